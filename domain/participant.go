// Package domain contains core concepts of the chat client.
// This file defines participant entities shown in the chat list and
// contact screens. No runtime, network, or UI logic should be added here.
package domain

// User is a chat participant as displayed in headers and the chat list.
type User struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
	Online bool   `json:"isOnline"`
}

// Contact is a device address-book entry considered for sync.
type Contact struct {
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Registered bool   `json:"registered"`
}
