package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"edu-finder-backend/internal/domain"
	"edu-finder-backend/internal/filter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newCatalogsCmd(reg domain.CatalogRegistry) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "catalogs",
		Short: "List catalogs and their filters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			infos := make([]domain.CatalogInfo, 0)
			for _, c := range reg.Catalogs() {
				infos = append(infos, c.Info())
			}
			return render(cmd.OutOrStdout(), output, infos, func(w *table) {
				w.row("NAME", "RECORDS", "FILTERS")
				for _, info := range infos {
					names := make([]string, 0, len(info.Filters))
					for _, f := range info.Filters {
						names = append(names, f.Name)
					}
					w.row(info.Name, fmt.Sprint(info.Size), strings.Join(names, ", "))
				}
			})
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "table", "table, json or yaml")
	return cmd
}

type searchOptions struct {
	text        string
	filters     []string
	flags       []string
	profilePath string
	savedIDs    []string
	output      string
}

func newSearchCmd(reg domain.CatalogRegistry) *cobra.Command {
	opts := &searchOptions{}
	cmd := &cobra.Command{
		Use:   "search <catalog>",
		Short: "Filter one catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, ok := reg.Get(args[0])
			if !ok {
				return fmt.Errorf("unknown catalog %q", args[0])
			}

			q, err := opts.query()
			if err != nil {
				return err
			}
			var profile *domain.UserProfile
			if opts.profilePath != "" {
				if profile, err = loadProfile(opts.profilePath); err != nil {
					return err
				}
			}

			items := c.Search(q, profile, domain.SavedSet(opts.savedIDs))
			return render(cmd.OutOrStdout(), opts.output, items, func(w *table) {
				w.row("ID", "TITLE", "ELIGIBILITY", "SAVED")
				for _, l := range items {
					saved := ""
					if l.Saved {
						saved = "*"
					}
					w.row(l.ID, l.Title, string(l.Eligibility), saved)
				}
			})
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.text, "q", "", "free-text search")
	f.StringArrayVar(&opts.filters, "filter", nil, "select filter as name=value (repeatable)")
	f.StringSliceVar(&opts.flags, "flag", nil, "enable a flag such as girlsOnly (repeatable or comma separated)")
	f.StringVar(&opts.profilePath, "profile", "", "JSON or YAML profile used for eligibility tags")
	f.StringSliceVar(&opts.savedIDs, "saved", nil, "ids to mark as saved")
	f.StringVarP(&opts.output, "output", "o", "table", "table, json or yaml")
	return cmd
}

func (o *searchOptions) query() (filter.Query, error) {
	q := filter.Query{Text: o.text}
	for _, kv := range o.filters {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || name == "" {
			return q, fmt.Errorf("invalid --filter %q, want name=value", kv)
		}
		if q.Fields == nil {
			q.Fields = map[string]string{}
		}
		q.Fields[name] = value
	}
	for _, flag := range o.flags {
		if q.Flags == nil {
			q.Flags = map[string]bool{}
		}
		q.Flags[flag] = true
	}
	return q, nil
}

func loadProfile(path string) (*domain.UserProfile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profile: %w", err)
	}

	var p domain.UserProfile
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(raw, &p)
	default:
		err = yaml.Unmarshal(raw, &p)
	}
	if err != nil {
		return nil, fmt.Errorf("parse profile %s: %w", path, err)
	}
	return &p, nil
}
