// Package wgconf renders registered accounts as wg-quick client profiles.
package wgconf
