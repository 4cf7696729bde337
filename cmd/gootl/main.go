// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2025.10.12
//

package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	m "github.com/mkhts/gootl"
)

func main() {

	// Parse command line arguments
	args, err := parseArgs()
	if err != nil {
		m.PrintE(err)
		flag.Usage()
		os.Exit(1)
	}

	// Run the main application
	if err := runApplication(args); err != nil {
		m.PrintE(err)
		os.Exit(1)
	}
}

// Main application processing
func runApplication(args cmdOpt) error {

	// Load input file
	sites, err := readBLQ(args.blqFn)
	if err != nil {
		return fmt.Errorf("failed to load input file: %w", err)
	}
	sites = selectSites(sites, args.site)
	if len(sites) == 0 {
		return fmt.Errorf("no site found in %s", args.blqFn)
	}

	// Prepare output file
	if args.format == "xlsx" && len(args.outFn) == 0 {
		return fmt.Errorf("output file (-o) is required for xlsx format")
	}
	out, err := prepareOutput(args)
	if err != nil {
		return fmt.Errorf("failed to prepare output: %w", err)
	}
	defer closeOutput(out)

	// Print header (not for a workbook)
	if !args.noHeader && args.format != "xlsx" {
		printHeader(out, os.Args[0], args)
	}

	// Process sites
	ep := args.epoch()
	opt := m.NewAdmOpt()
	opt.End = args.end
	var res []m.SiteSol
	for _, site := range sites {
		if site.Pos != nil {
			xyz := site.Pos.ToXYZ()
			m.PrintD(1, "site %s: llh=%s xyz=%s\n", site.Name, site.Pos, &xyz)
		}
		sols := m.AdmintSite(site, ep, opt)
		if args.format == "xlsx" {
			res = append(res, m.SiteSol{Site: site, Sols: sols})
			continue
		}
		for _, c := range args.comps {
			if err := printSol(out, args.format, site, c, sols[c]); err != nil {
				return fmt.Errorf("failed to print %s/%s: %w", site.Name, c, err)
			}
		}
	}

	// Workbook is written at once
	if args.format == "xlsx" {
		if err := m.WriteXLSX(out, res, args.comps); err != nil {
			return fmt.Errorf("failed to write workbook: %w", err)
		}
	}
	return nil
}

// Read BLQ file ("-" for stdin)
func readBLQ(fn string) ([]*m.BLQSite, error) {
	if fn == "-" {
		return m.ReadBLQ(os.Stdin)
	}
	f, err := os.Open(fn)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return m.ReadBLQ(f)
}

// Filter sites by name (empty: all)
func selectSites(sites []*m.BLQSite, name string) []*m.BLQSite {
	if len(name) == 0 {
		return sites
	}
	var s []*m.BLQSite
	for _, site := range sites {
		if strings.EqualFold(site.Name, name) {
			s = append(s, site)
		}
	}
	return s
}

// Prepare output file
func prepareOutput(args cmdOpt) (io.WriteCloser, error) {

	// Use stdout if no output file is specified
	if len(args.outFn) == 0 {
		return &nopCloser{os.Stdout}, nil
	}

	// Create output file
	f, err := os.Create(args.outFn)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, nil
}

// Close output file
func closeOutput(out io.WriteCloser) {
	if out != nil {
		out.Close()
	}
}

func printHeader(out io.Writer, cmd string, args cmdOpt) {
	fmt.Fprintf(out, "%% program   : %s\n", filepath.Base(cmd))
	fmt.Fprintf(out, "%% inp file  : %s\n", args.blqFn)
	fmt.Fprintf(out, "%% epoch     : %s (UTC)\n", args.epoch())
	fmt.Fprintf(out, "%% spline    : %s\n", &args.end)
	fmt.Fprintf(out, "%% components: %s\n", &args.comps)
}

// Print the interpolated harmonics of one component
func printSol(out io.Writer, format string, site *m.BLQSite, c m.Comp, sol *m.AdmSol) error {
	switch format {
	case "table":
		t := table.NewWriter()
		t.SetOutputMirror(out)
		t.SetTitle(fmt.Sprintf("%s %s (lp=%d di=%d sd=%d)", site.Name, c, sol.NLp, sol.NDi, sol.NSd))
		t.AppendHeader(table.Row{"#", "Doodson", "freq(cpd)", "amp(m)", "phase(deg)"})
		for j := 0; j <= sol.NOut; j++ {
			t.AppendRow(table.Row{
				j,
				sol.Doodson[j].Number(),
				fmt.Sprintf("%.9f", sol.Freq[j]),
				fmt.Sprintf("%.6e", sol.Amp[j]),
				fmt.Sprintf("%.4f", sol.Phase[j]),
			})
		}
		t.SetStyle(table.StyleLight)
		t.Render()
	case "text":
		fmt.Fprintf(out, "> %s %s %d %d %d %d\n", site.Name, c, sol.NOut, sol.NLp, sol.NDi, sol.NSd)
		for j := 0; j <= sol.NOut; j++ {
			fmt.Fprintf(out, "%3d %s %12.9f %14.6e %10.4f\n", j, sol.Doodson[j].Number(), sol.Freq[j], sol.Amp[j], sol.Phase[j])
		}
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
	return nil
}

// nopCloser - WriteCloser that ignores close operations
type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// Structure to hold command line argument information
type cmdOpt struct {
	blqFn    string
	outFn    string
	site     string
	format   string
	noHeader bool
	t        time.Time
	gt       m.GTime
	end      m.SplineEnd
	comps    m.CompVar
}

// Epoch of the computation (GPS time has priority when given)
func (a *cmdOpt) epoch() m.Epoch {
	if a.gt.Week > 0 {
		return a.gt.Epoch()
	}
	return m.NewEpoch(a.t)
}

// Parse command line arguments
func parseArgs() (a cmdOpt, err error) {
	flag.Usage = func() {
		m.PrintA(`
[Usage]
	%s [Options] file.blq
	%s [Options] - < file.blq

[Options]
`, filepath.Base(os.Args[0]), filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	var t_ m.TimeStr
	flag.TextVar(&t_, "t", m.NewTimeStr(time.Now().UTC().Truncate(time.Second)), "Epoch (UTC). Enclose in quotes like -t \"2009/06/25 01:10:45\"")
	flag.Var(&a.gt, "gt", "Epoch as GPS week and seconds like -gt \"1537 349863\". Has priority over -t.")
	flag.Var(&a.end, "e", "Spline end condition. 0(natural), 1(quadratic, as the IERS routine)")
	a.comps = m.CompVar{m.Radial, m.West, m.South}
	flag.Var(&a.comps, "c", "Components to output. R(radial), W(west), S(south). Comma-separated without spaces. Default: R,W,S")
	flag.StringVar(&a.site, "s", "", "Site name to process. Omit to process all sites in the file.")
	flag.StringVar(&a.outFn, "o", "", "Output file path. If not specified, output to stdout.")
	flag.BoolVar(&a.noHeader, "nh", false, "Do not output header section.")
	flag.StringVar(&a.format, "f", "text", "Output format. text, table or xlsx (needs -o)")
	var dbg int
	flag.IntVar(&dbg, "x", 0, "Debug information display. Specify level value. 0(OFF), 1(display), 2(detailed display), 3(more detailed), 4(most detailed)")
	flag.Parse()
	switch flag.NArg() {
	case 1:
		a.blqFn = flag.Arg(0)
	default:
		return a, fmt.Errorf("too less or many arguments")
	}
	a.t = time.Time(t_)
	m.DBG_ = dbg
	m.PrintD(1, "epoch: %s\n", a.epoch())
	return
}
