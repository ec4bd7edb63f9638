package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/bwdtc/bridgewater-dems/internal/content"
	"github.com/bwdtc/bridgewater-dems/internal/merge"
	"github.com/bwdtc/bridgewater-dems/internal/model"
	"github.com/bwdtc/bridgewater-dems/internal/service"
	"github.com/bwdtc/bridgewater-dems/internal/storage"
)

func (a *cli) contentService() service.ContentService {
	return service.NewContentService(a.store, content.DefaultDocument(), a.log)
}

func printDocument(cmd *cobra.Command, doc model.ContentDocument, section string) error {
	if section == "" {
		return printJSON(cmd.OutOrStdout(), doc)
	}
	v, ok := doc.Section(section)
	if !ok {
		return fmt.Errorf("unknown section %q (one of %s)", section, strings.Join(model.Sections, ", "))
	}
	return printJSON(cmd.OutOrStdout(), v)
}

func newDefaultsCmd(a *cli) *cobra.Command {
	var section string
	cmd := &cobra.Command{
		Use:         "defaults",
		Short:       "Print the built-in content document",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{"offline": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return printDocument(cmd, content.DefaultDocument(), section)
		},
	}
	cmd.Flags().StringVar(&section, "section", "", "print only this section")
	return cmd
}

func newShowCmd(a *cli) *cobra.Command {
	var section string
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the content document as the site serves it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printDocument(cmd, a.contentService().Document(cmd.Context()), section)
		},
	}
	cmd.Flags().StringVar(&section, "section", "", "print only this section")
	return cmd
}

func newImportCmd(a *cli) *cobra.Command {
	var donation bool
	cmd := &cobra.Command{
		Use:   "import <file.json|file.yaml>",
		Short: "Overlay a content file onto the stored document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readOverride(args[0])
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			svc := a.contentService()
			var (
				key    string
				out    []byte
				issues []merge.Issue
			)
			if donation {
				var doc model.DonationContent
				doc, issues, err = merge.Overlay(svc.Donation(ctx), raw)
				key = storage.KeyDonationContent
				if err == nil {
					out, err = json.Marshal(doc)
				}
			} else {
				var doc model.SiteContent
				doc, issues, err = merge.Overlay(svc.Site(ctx), raw)
				key = storage.KeySiteContent
				if err == nil {
					out, err = json.Marshal(doc)
				}
			}
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			for _, is := range issues {
				fmt.Fprintf(cmd.ErrOrStderr(), "skipped %s\n", is)
			}

			if err := a.store.Set(ctx, key, out); err != nil {
				return fmt.Errorf("save %s: %w", key, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %s into %s\n", args[0], key)
			return nil
		},
	}
	cmd.Flags().BoolVar(&donation, "donation", false, "import into the donation document")
	return cmd
}

// readOverride loads a JSON or YAML file and returns it as JSON.
func readOverride(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		var v map[string]any
		if err := yaml.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		return json.Marshal(v)
	default:
		return data, nil
	}
}

func newResetCmd(a *cli) *cobra.Command {
	var donation bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete the stored document so the defaults apply",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			key := storage.KeySiteContent
			if donation {
				key = storage.KeyDonationContent
			}
			if err := a.store.Delete(cmd.Context(), key); err != nil {
				return fmt.Errorf("reset %s: %w", key, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "reset %s\n", key)
			return nil
		},
	}
	cmd.Flags().BoolVar(&donation, "donation", false, "reset the donation document")
	return cmd
}

func newRecipientsCmd(a *cli) *cobra.Command {
	submissions := func() service.SubmissionService {
		return service.NewSubmissionService(a.store, a.contentService(), nil, nil, service.SubmissionConfig{
			DefaultRecipients: a.cfg.Mail.DefaultRecipients,
		}, a.log)
	}

	cmd := &cobra.Command{
		Use:   "recipients",
		Short: "Show or change who receives contributor form notifications",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "Print the notification recipients",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return printJSON(cmd.OutOrStdout(), submissions().Recipients(cmd.Context()))
			},
		},
		&cobra.Command{
			Use:   "set <address>...",
			Short: "Replace the notification recipients",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := submissions().SetRecipients(cmd.Context(), args); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "saved %d recipient(s)\n", len(args))
				return nil
			},
		},
	)
	return cmd
}
