// Inkwell - Bookstore Management and Recommendation Backend
// Copyright 2026 Inkwell Labs
// SPDX-License-Identifier: MIT
// https://github.com/inkwell-labs/inkwell

/*
Package supervisor builds the suture/v4 supervision tree for the
application.

The tree has two child layers for failure isolation:

  - engine: the scheduled recommendation rebuild service
  - api: the HTTP server

A crash in the rebuild loop restarts only that layer; the HTTP server
keeps serving requests against the last good dataset. Supervisor
events are logged through sutureslog into the application's zerolog
pipeline.
*/
package supervisor
