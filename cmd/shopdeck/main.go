// Package main provides the entry point for the Shopdeck TUI application.
//
// Shopdeck is a terminal admin console for the shop, built on The Elm
// Architecture (TEA): order browsing with payment record lookup, storefront
// content editing and transactional email previews.
package main

import "github.com/danagreer/shopdeck/internal/cli"

func main() {
	cli.Execute()
}
