// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the fintrace command-line application.
//
// It dispatches the analyze, summarize, chat, history and version commands
// to the client services and renders their results either as raw JSON or as
// a styled terminal report.
package client
