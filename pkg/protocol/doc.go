// ABOUTME: Protocol message type package
// ABOUTME: Defines the JSON wire contract for timestamp exchanges
// Package protocol defines the wire types exchanged between server-clock
// clients and a timestamp endpoint.
package protocol
