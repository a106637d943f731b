package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/urfave/cli/v2"

	"medman/internal/catalog"
	"medman/internal/errors"
	"medman/internal/export"
)

func scanCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:      "scan",
		Usage:     "Scan a directory and list the media files found",
		ArgsUsage: "<path>",
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return usageError(c, "scan needs exactly one directory")
			}

			cat, err := e.scanRoot(c.Args().First())
			if err != nil {
				return err
			}

			printRecords(e.out, cat.Records())
			fmt.Fprintf(e.out, "\n%s files in %s\n", commatize(cat.Len()), cat.Root())
			return nil
		},
	}
}

func searchCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:      "search",
		Usage:     "Scan a directory and search it",
		ArgsUsage: "<path> <query...>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Print the results as JSON",
			},
			&cli.IntFlag{
				Name:    "indent",
				Aliases: []string{"i"},
				Usage:   "JSON indentation width, 0 for compact output",
				Value:   2,
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() < 2 {
				return usageError(c, "search needs a directory and a query")
			}

			report, err := e.searchIn(c.Args().First(), strings.Join(c.Args().Tail(), " "))
			if err != nil {
				return err
			}

			if c.Bool("json") {
				if c.Int("indent") < 0 {
					return usageError(c, "--indent cannot be negative")
				}
				return export.JSON{Indent: c.Int("indent")}.Write(e.out, report)
			}

			printReport(e.out, report)
			return nil
		},
	}
}

func write2mdCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:      "write2md",
		Usage:     "Scan a directory, search it and write the results to a markdown document",
		ArgsUsage: `<path> "<file> search <query...>"`,
		Action: func(c *cli.Context) error {
			if c.NArg() < 2 {
				return usageError(c, "write2md needs a directory and a request")
			}

			parts := strings.SplitN(strings.Join(c.Args().Tail(), " "), " ", 3)
			if len(parts) < 3 || parts[1] != "search" || strings.TrimSpace(parts[2]) == "" {
				return usageError(c, `the request must look like "<file> search <query...>"`)
			}

			return e.exportTo(c.Args().First(), parts[0], parts[2], export.Markdown{})
		},
	}
}

func exportCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:      "export",
		Usage:     "Scan a directory, search it and write the results to a .md, .json or .sqlite document",
		ArgsUsage: "<path> <file> <query...>",
		Action: func(c *cli.Context) error {
			if c.NArg() < 3 {
				return usageError(c, "export needs a directory, a file and a query")
			}

			file := c.Args().Get(1)
			exporter, err := export.ForPath(file)
			if err != nil {
				return usageError(c, err.Error())
			}

			return e.exportTo(c.Args().First(), file, strings.Join(c.Args().Slice()[2:], " "), exporter)
		},
	}
}

func (e *env) searchIn(root, query string) (export.Report, error) {
	cat, err := e.scanRoot(root)
	if err != nil {
		return export.Report{}, err
	}

	return export.Report{
		Request: "search " + query,
		Results: e.engine.Query(cat, query),
	}, nil
}

func (e *env) exportTo(root, file, query string, exporter export.Exporter) error {
	report, err := e.searchIn(root, query)
	if err != nil {
		return err
	}

	path, err := expandPath(file)
	if err != nil {
		return err
	}

	if err := exporter.Export(path, report); err != nil {
		return err
	}

	fmt.Fprintf(e.out, "%d results exported to %s\n", len(report.Results), path)
	return nil
}

func usageError(c *cli.Context, msg string) error {
	_ = cli.ShowSubcommandHelp(c)
	return errors.WithExitCode(errors.New(msg), 2)
}

func printReport(w io.Writer, r export.Report) {
	if len(r.Results) == 0 {
		fmt.Fprintln(w, "No results found.")
		return
	}

	printRecords(w, r.Results)
	fmt.Fprintf(w, "\n%s results\n", commatize(len(r.Results)))
}

func printRecords(w io.Writer, records []*catalog.Record) {
	for _, r := range records {
		fmt.Fprintf(w, "\n %s\n", r.Path)
		fmt.Fprintf(w, "    title: %s  author: %s  album: %s\n", r.Title, r.Author, r.Album)
		fmt.Fprintf(w, "    year: %d  genre: %s  duration: %s  size: %d\n", r.Year, r.Genre, r.Duration, r.Size)
	}
}
