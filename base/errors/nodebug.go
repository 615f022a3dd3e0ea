// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !debug

package errors

// Debug is whether the program is built in debug mode,
// in which case [Check] panics instead of logging.
const Debug = false
