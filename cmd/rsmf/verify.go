package main

import (
	"archive/zip"
	"bytes"
	"crypto/sha256"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gookit/color"
	"github.com/spf13/cobra"

	"rsmf-lab/domain/manifest"
	"rsmf-lab/domain/mimetypes"
	"rsmf-lab/rsmf"
)

func newVerifyCommand(log *slog.Logger) *cobra.Command {
	var inputDir string

	cmd := &cobra.Command{
		Use:   "verify <file>",
		Short: "Check an existing container: headers, attachment, zip round-trip",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Debug("Verifying container", "file", args[0])
			c, err := rsmf.OpenFile(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			failed := 0
			check := func(ok bool, format string, a ...any) {
				line := fmt.Sprintf(format, a...)
				if ok {
					fmt.Fprintln(out, color.Green.Render("✔ "+line))
				} else {
					failed++
					fmt.Fprintln(out, color.Red.Render("✘ "+line))
				}
			}

			version := c.Header(rsmf.HeaderVersion)
			check(version != "", "version header (%s)", version)
			check(c.Header(rsmf.HeaderGenerator) != "", "generator header (%s)", c.Header(rsmf.HeaderGenerator))

			att, ok := c.Zip()
			check(ok, "attachment %s present", rsmf.ZipName)
			if !ok {
				return fmt.Errorf("%d checks failed", failed)
			}

			_, typeOK := mimetypes.Matches(att.ContentType, mimetypes.ApplicationZIP)
			check(typeOK, "attachment content type (%s)", att.ContentType)
			check(mimetypes.Detect(att.Content) == mimetypes.ApplicationZIP, "attachment bytes look like a zip")

			zr, err := zip.NewReader(bytes.NewReader(att.Content), int64(len(att.Content)))
			check(err == nil, "zip opens")
			if err != nil {
				return fmt.Errorf("%d checks failed", failed)
			}

			names := make(map[string]*zip.File, len(zr.File))
			for _, zf := range zr.File {
				names[zf.Name] = zf
			}
			mf, hasManifest := names[manifest.Filename]
			check(hasManifest, "%s archived", manifest.Filename)

			if hasManifest {
				raw, err := readZipEntry(mf)
				if err != nil {
					return err
				}
				m, parseErr := manifest.Parse(raw)
				check(parseErr == nil, "archived manifest parses")
				if parseErr == nil {
					countHeader := c.Header(rsmf.HeaderEventCount)
					if m.HasEvents() {
						check(countHeader == strconv.Itoa(len(m.EventList())),
							"event count header matches manifest (%s)", countHeader)
					} else {
						check(countHeader == "", "no event count header without an events list")
					}
				}
			}

			if inputDir != "" {
				// Chaque fichier du dossier doit ressortir à l'identique
				dirEntries, err := os.ReadDir(inputDir)
				if err != nil {
					return err
				}
				for _, de := range dirEntries {
					if !de.Type().IsRegular() {
						continue
					}
					zf, archived := names[de.Name()]
					if !archived {
						check(false, "%s archived", de.Name())
						continue
					}
					want, err := os.ReadFile(filepath.Join(inputDir, de.Name()))
					if err != nil {
						return err
					}
					got, err := readZipEntry(zf)
					if err != nil {
						return err
					}
					check(sha256.Sum256(want) == sha256.Sum256(got), "%s round-trips byte for byte", de.Name())
				}
			}

			if failed > 0 {
				return fmt.Errorf("%d checks failed", failed)
			}
			fmt.Fprintln(out, color.Green.Render("Container looks good"))
			return nil
		},
	}

	cmd.Flags().StringVar(&inputDir, "input", "", "Original input directory to compare against")
	return cmd
}

func readZipEntry(zf *zip.File) ([]byte, error) {
	rc, err := zf.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}
