// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cmd implements the imageview command tree.
package cmd

import (
	"cogentcore.org/imageview/base/logx"
	"github.com/spf13/cobra"
)

// NewRootCommand returns the imageview root command
// with all of its subcommands.
func NewRootCommand() *cobra.Command {
	var vv, v, q bool
	root := &cobra.Command{
		Use:          "imageview",
		Short:        "Render image widgets onto a simulated display",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logx.UserLevel = logx.LevelFromFlags(vv, v, q)
			logx.SetDefaultLogger()
		},
	}
	pf := root.PersistentFlags()
	pf.BoolVar(&vv, "vv", false, "very verbose: show debug messages")
	pf.BoolVarP(&v, "verbose", "v", false, "verbose: show informational messages")
	pf.BoolVarP(&q, "quiet", "q", false, "quiet: only show errors")
	root.AddCommand(newRenderCommand())
	return root
}
