// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command imageview renders image widgets onto a simulated display,
// either a png file or the terminal.
package main

import (
	"context"
	"os"
	"os/signal"

	"cogentcore.org/imageview/cmd/imageview/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := cmd.NewRootCommand().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
