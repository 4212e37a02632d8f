// Command vb6parse is the thin CLI front end over the vb6parse library: a
// Cobra command tree with three subcommands — parse, debug-tree, and
// project.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	vb6parse "github.com/scriptandcompile/vb6parse-sub002"
	"github.com/scriptandcompile/vb6parse-sub002/vbproject"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "vb6parse",
		Short:         "Parse VB6 source artifacts into a lossless concrete syntax tree",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.AddCommand(newParseCmd(), newDebugTreeCmd(), newProjectCmd())
	return root
}

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a file and report its failure list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}
			tree, failures := vb6parse.ParseText(args[0], src)
			if tree == nil {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: parse aborted (%d fatal failure(s))\n", args[0], len(failures))
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: parsed, root=%s, %d top-level children, %d failure(s)\n",
					args[0], tree.RootKind(), tree.ChildCount(), len(failures))
			}
			for _, f := range failures {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", f.Error())
			}
			return nil
		},
	}
}

func newDebugTreeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "debug-tree <file>",
		Short: "Parse a file and print its indented debug tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}
			tree, failures := vb6parse.ParseText(args[0], src)
			if tree == nil {
				return fmt.Errorf("%s: parse aborted: %v", args[0], failures)
			}
			fmt.Fprint(cmd.OutOrStdout(), tree.DebugTree())
			return nil
		},
	}
}

func newProjectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "project <file.vbp>",
		Short: "Aggregate a .vbp project file's references and members",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}
			proj, err := vbproject.Parse(src)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Type: %s\n", proj.Type)
			fmt.Fprintf(out, "Modules: %d, Classes: %d, Forms: %d, Designers: %d, UserControls: %d, References: %d\n",
				len(proj.Modules), len(proj.Classes), len(proj.Forms), len(proj.Designers), len(proj.UserControls), len(proj.References))
			return nil
		},
	}
}
