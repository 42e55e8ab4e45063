package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dshills/ayed/internal/app"
	"github.com/dshills/ayed/internal/config"
	"github.com/dshills/ayed/internal/input/keymap"
	"github.com/dshills/ayed/internal/input/mode"
)

// maxListedKeys collapses actions bound to many keys, such as insert_char.
const maxListedKeys = 8

func newConfigCmd(opts *app.Options) *cobra.Command {
	var showEnv bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			if showEnv {
				for _, name := range config.EnvVars() {
					fmt.Fprintln(out, name)
				}
				return nil
			}

			cfg, err := config.Load(opts.ConfigPath)
			if err != nil {
				return err
			}
			return cfg.Encode(out)
		},
	}
	cmd.Flags().BoolVar(&showEnv, "env", false, "list the environment variables that override settings")
	return cmd
}

func newKeysCmd(opts *app.Options) *cobra.Command {
	return &cobra.Command{
		Use:       "keys [mode]",
		Short:     "List key bindings, including configured overrides",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{mode.NameInsert, mode.NameNormal, mode.NameVisual, mode.NameVisualLine},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.ConfigPath)
			if err != nil {
				return err
			}
			reg := keymap.NewRegistry()
			if err := reg.ApplyOverrides(cfg.Overrides(), "config"); err != nil {
				return err
			}

			modes := mode.All()
			if len(args) == 1 {
				m, err := mode.Parse(args[0])
				if err != nil {
					return err
				}
				modes = []mode.Mode{m}
			}
			for _, m := range modes {
				printKeymap(cmd.OutOrStdout(), reg.For(m))
			}
			return nil
		},
	}
}

func printKeymap(w io.Writer, km *keymap.Keymap) {
	fmt.Fprintf(w, "%s (%d keys)\n", km.Mode, km.Len())

	groups := keymap.GroupByCategory(km.Bindings())
	cats := make([]string, 0, len(groups))
	for cat := range groups {
		cats = append(cats, cat)
	}
	sort.Strings(cats)

	for _, cat := range cats {
		fmt.Fprintf(w, "  %s\n", cat)

		byAction := make(map[keymap.Action][]string)
		var actions []keymap.Action
		for _, b := range groups[cat] {
			if _, ok := byAction[b.Action]; !ok {
				actions = append(actions, b.Action)
			}
			byAction[b.Action] = append(byAction[b.Action], b.Combo.String())
		}
		sort.Slice(actions, func(i, j int) bool { return actions[i].String() < actions[j].String() })

		for _, a := range actions {
			keys := byAction[a]
			list := strings.Join(keys, ", ")
			if len(keys) > maxListedKeys {
				list = fmt.Sprintf("%d keys", len(keys))
			}
			fmt.Fprintf(w, "    %-26s %s\n", a, list)
		}
	}
}
