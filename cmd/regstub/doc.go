// Package main runs the in-memory registration stub used by warpkey during
// development and tests. It mimics the device-registration endpoint of the
// real service closely enough for the CLI to exercise its full register flow
// offline.
//
// HTTP API
//
//	POST /reg
//	    Enroll a device. The body must carry a 44-character base64 public key
//	    and a TOS timestamp; malformed keys are rejected with 400. The
//	    response is a full registration document: device id, auth token,
//	    license, client id, the stub's peer public key with its endpoint, and
//	    a fixed pair of tunnel addresses.
//
// Behaviour
//
//   - One Curve25519 pair is generated at startup; its public half is handed
//     to every registrant as the peer key.
//   - All registrations are held in memory and lost on process exit.
//   - Device ids are "t." plus 12 hex characters; tokens are 32 hex
//     characters.
//   - The default listen address is :8080. The peer endpoint handed out is
//     configurable with -endpoint.
//
// The stub performs no authentication and keeps no persistent state. It is
// intended for local use only.
package main
