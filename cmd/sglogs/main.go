// Copyright 2024-25 Daniel Swarbrick. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

// sglogs fetches SCSI log pages with LOG SENSE and decodes them, or decodes
// previously captured responses from hex or raw files.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dswarbrick/sglogs"
	"github.com/dswarbrick/sglogs/logpage"
	"github.com/dswarbrick/sglogs/scsi"
)

var (
	verbosity string

	optDevice  string
	optInFile  string
	optRawFile string
	optPage    string
	optAll     bool
	optScan    bool

	optList        bool
	optListNumeric bool

	optBrief    int
	optVerbose  int
	optHex      int
	optRaw      bool
	optJSON     bool
	optJSONFile string

	optFilter      int
	optControl     bool
	optNoVendor    bool
	optName        bool
	optPDT         int
	optVendor      string
	optMaxLen      int
	optVendorDb    string
	optParamPtr    uint16
	optPageControl uint8
)

// statusError carries an explicit process exit status alongside the error.
type statusError struct {
	status logpage.ExitStatus
	err    error
}

func (e *statusError) Error() string { return e.err.Error() }
func (e *statusError) Unwrap() error { return e.err }

func fail(status logpage.ExitStatus, format string, args ...interface{}) error {
	return &statusError{status: status, err: fmt.Errorf(format, args...)}
}

var rootCmd = &cobra.Command{
	Use:           "sglogs",
	Short:         "Decode SCSI log pages",
	Long:          "Fetches log pages from a SCSI device with LOG SENSE, or decodes captured responses from hex or raw files, rendering them as text and structured JSON.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setUpLogs(verbosity)
	},
	RunE: run,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&verbosity, "verbosity", zerolog.WarnLevel.String(), "log level (debug, info, warn, error)")

	f := rootCmd.Flags()
	f.StringVarP(&optDevice, "device", "d", "", "SCSI device node to query")
	f.StringVarP(&optInFile, "in-file", "i", "", "read a hex dump of a response instead of a device ('-' for stdin)")
	f.StringVar(&optRawFile, "raw-file", "", "read a binary response instead of a device")
	f.StringVarP(&optPage, "page", "p", "", "page to fetch: acronym, or page[,subpage] in decimal or hex")
	f.BoolVarP(&optAll, "all", "a", false, "fetch and decode every page the device reports as supported")
	f.BoolVarP(&optScan, "scan", "s", false, "list candidate device nodes and exit")

	f.BoolVarP(&optList, "list", "l", false, "list known pages ordered by acronym")
	f.BoolVar(&optListNumeric, "list-numeric", false, "list known pages ordered by page number")

	f.CountVarP(&optBrief, "brief", "b", "reduce output decoration (repeat for more)")
	f.CountVarP(&optVerbose, "verbose", "V", "increase decode detail (repeat for more)")
	f.CountVarP(&optHex, "hex", "H", "dump parameters as hex; twice for the whole page")
	f.BoolVarP(&optRaw, "raw", "r", false, "dump the response verbatim, header included")
	f.BoolVarP(&optJSON, "json", "j", false, "emit the structured JSON tree instead of text")
	f.StringVar(&optJSONFile, "json-file", "", "write the JSON tree to a file, keeping text on stdout")

	f.IntVarP(&optFilter, "filter", "f", -1, "decode only the parameter with this code")
	f.BoolVar(&optControl, "control-bytes", false, "show the control byte fields of each parameter")
	f.BoolVar(&optNoVendor, "no-vendor", false, "skip vendor specific parameter codes")
	f.BoolVarP(&optName, "name", "n", false, "prefix parameter codes with their field name")
	f.IntVar(&optPDT, "pdt", logpage.PDTAny, "peripheral device type override")
	f.StringVar(&optVendor, "vendor", "", "vendor selector override (seagate, hitachi, toshiba, lto-5, lto-6)")
	f.IntVarP(&optMaxLen, "maxlen", "m", 0, "LOG SENSE allocation length (0 for the default)")
	f.StringVar(&optVendorDb, "vendor-db", "", "path to a YAML vendor model table")
	f.Uint16Var(&optParamPtr, "paramp", 0, "parameter pointer for the LOG SENSE CDB")
	f.Uint8Var(&optPageControl, "page-control", scsi.LOG_PC_CUMULATIVE, "page control field (0..3)")

	viper.SetEnvPrefix("SGLOGS")
	viper.AutomaticEnv()
	viper.BindPFlag("vendor_db", f.Lookup("vendor-db"))
	viper.BindPFlag("maxlen", f.Lookup("maxlen"))
}

func setUpLogs(level string) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "sglogs: %v\n", err)

		var se *statusError
		if errors.As(err, &se) {
			os.Exit(int(se.status))
		}
		if errors.Is(err, scsi.ErrWildResid) {
			os.Exit(int(logpage.StatusWildResid))
		}
		var sge scsi.SgioError
		if errors.As(err, &sge) {
			os.Exit(int(sge.ExitStatus()))
		}
		os.Exit(int(logpage.StatusOther))
	}
}

func run(cmd *cobra.Command, args []string) error {
	if optScan {
		for _, dev := range sglogs.ScanDevices() {
			fmt.Println(dev)
		}
		return nil
	}

	if optList || optListNumeric {
		listPages()
		return nil
	}

	if err := checkSources(optDevice, optInFile, optRawFile); err != nil {
		return err
	}

	ctx, err := buildContext()
	if err != nil {
		return err
	}
	ctx.Structured = optJSON || optJSONFile != ""

	human := io.Writer(os.Stdout)
	if optJSON && optJSONFile == "" {
		human = nil
	}
	p := logpage.NewPrinter(human, ctx)

	switch {
	case optInFile != "":
		err = decodeHexFile(p, optInFile, ctx)
	case optRawFile != "":
		err = decodeRawFile(p, optRawFile, ctx)
	case optDevice != "":
		err = decodeFromDevice(p, ctx)
	default:
		return fail(logpage.StatusSyntaxError, "one of --device, --in-file or --raw-file is required")
	}
	if err != nil {
		return err
	}

	return writeJSON(p)
}

// checkSources rejects a run naming more than one input source: a device, a
// hex file and a raw file are mutually exclusive.
func checkSources(device, inFile, rawFile string) error {
	n := 0
	for _, s := range []string{device, inFile, rawFile} {
		if s != "" {
			n++
		}
	}
	if n > 1 {
		return fail(logpage.StatusContradict, "--device, --in-file and --raw-file are mutually exclusive")
	}
	return nil
}

// buildContext translates the flag set into a decode context.
func buildContext() (*logpage.DecodeContext, error) {
	ctx := logpage.NewDecodeContext()
	ctx.FilterParamCode = optFilter
	ctx.EmitControlBytes = optControl
	ctx.Brief = optBrief
	ctx.Verbose = optVerbose
	ctx.HexOnly = optHex
	ctx.RawOutput = optRaw
	ctx.ExcludeVendor = optNoVendor
	ctx.NameMode = optName
	ctx.PDT = optPDT

	if optVendor != "" {
		v, ok := logpage.ParseVendor(optVendor)
		if !ok {
			return nil, fail(logpage.StatusSyntaxError, "unknown vendor selector %q", optVendor)
		}
		ctx.Vendor = v
	}

	return ctx, nil
}

// parsePageArg resolves --page: an acronym from the registry, or a numeric
// page[,subpage] pair in decimal or 0x hex.
func parsePageArg(s string) (page, subpage uint8, err error) {
	if e := logpage.FindAcronym(s); e != nil {
		return e.Page, e.SubLow, nil
	}

	parts := strings.SplitN(s, ",", 2)
	pg, err := strconv.ParseUint(parts[0], 0, 8)
	if err != nil || pg > 0x3f {
		return 0, 0, fail(logpage.StatusSyntaxError, "bad page %q: want an acronym or a page code 0..0x3f", s)
	}
	if len(parts) == 2 {
		sp, err := strconv.ParseUint(parts[1], 0, 8)
		if err != nil {
			return 0, 0, fail(logpage.StatusSyntaxError, "bad subpage in %q", s)
		}
		subpage = uint8(sp)
	}
	return uint8(pg), subpage, nil
}

func listPages() {
	entries := logpage.EntriesByAcronym(!optNoVendor)
	if optListNumeric {
		entries = logpage.Entries(!optNoVendor)
	}

	for _, e := range entries {
		code := fmt.Sprintf("0x%02x", e.Page)
		if e.SubLow != 0 || e.SubHigh != 0 {
			if e.SubLow == e.SubHigh {
				code += fmt.Sprintf(",0x%02x", e.SubLow)
			} else {
				code += fmt.Sprintf(",0x%02x..0x%02x", e.SubLow, e.SubHigh)
			}
		}
		fmt.Printf("%-18s %-8s %s\n", code, e.Acronym, e.Name)
	}
}

func decodeHexFile(p *logpage.Printer, name string, ctx *logpage.DecodeContext) error {
	r := io.Reader(os.Stdin)
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return fail(logpage.StatusFileError, "cannot open %s: %v", name, err)
		}
		defer f.Close()
		r = f
	}

	buf, err := logpage.ReadHexBytes(r)
	if err != nil {
		return fail(logpage.StatusSyntaxError, "%s: %v", name, err)
	}
	return decodeBuffer(p, buf, ctx)
}

func decodeRawFile(p *logpage.Printer, name string, ctx *logpage.DecodeContext) error {
	buf, err := os.ReadFile(name)
	if err != nil {
		return fail(logpage.StatusFileError, "cannot read %s: %v", name, err)
	}
	return decodeBuffer(p, buf, ctx)
}

func decodeBuffer(p *logpage.Printer, buf []byte, ctx *logpage.DecodeContext) error {
	if _, err := logpage.DecodePage(p, buf, ctx); err != nil {
		return fail(logpage.StatusShortInput, "decode: %v", err)
	}
	return nil
}

func decodeFromDevice(p *logpage.Printer, ctx *logpage.DecodeContext) error {
	maxLen := optMaxLen
	if maxLen == 0 {
		maxLen = viper.GetInt("maxlen")
	}
	vdbPath := optVendorDb
	if vdbPath == "" {
		vdbPath = viper.GetString("vendor_db")
	}

	sess, err := sglogs.OpenDevice(optDevice, ctx, vdbPath)
	if err != nil {
		if errors.As(err, new(scsi.SgioError)) {
			return err
		}
		return fail(logpage.StatusFileError, "%s: %v", optDevice, err)
	}
	defer sess.Close()

	if optAll {
		return decodeAll(p, sess, ctx, maxLen)
	}

	page, subpage := uint8(0), uint8(0)
	if optPage != "" {
		if page, subpage, err = parsePageArg(optPage); err != nil {
			return err
		}
	}

	buf, err := fetch(sess, page, subpage, maxLen)
	if err != nil {
		return err
	}
	return decodeBuffer(p, buf, ctx)
}

// decodeAll walks the merged supported listing and decodes every page into the
// same printer. A page that fails to fetch is reported and skipped.
func decodeAll(p *logpage.Printer, sess *sglogs.Session, ctx *logpage.DecodeContext, maxLen int) error {
	pages, subpages, err := sess.FetchSupported(maxLen)
	if err != nil {
		return err
	}

	var decoded int
	for _, ref := range logpage.MergeSupported(pages, subpages) {
		buf, err := fetch(sess, ref.Page, ref.Subpage, maxLen)
		if err != nil {
			log.Warn().Err(err).
				Uint8("page", ref.Page).Uint8("subpage", ref.Subpage).
				Msg("page fetch failed, skipping")
			continue
		}
		if _, err := logpage.DecodePage(p, buf, ctx); err != nil {
			log.Warn().Err(err).
				Uint8("page", ref.Page).Uint8("subpage", ref.Subpage).
				Msg("page decode failed, skipping")
			continue
		}
		decoded++
	}

	if decoded == 0 {
		return fail(logpage.StatusOther, "no pages could be decoded")
	}
	return nil
}

func fetch(sess *sglogs.Session, page, subpage uint8, maxLen int) ([]byte, error) {
	if optPageControl != scsi.LOG_PC_CUMULATIVE || optParamPtr != 0 {
		if maxLen <= 0 {
			maxLen = sglogs.DefaultAllocLen
		}
		buf, _, err := sess.Dev().LogSense(page, subpage, optPageControl, optParamPtr, maxLen)
		return buf, err
	}
	return sess.FetchPage(page, subpage, maxLen)
}

func writeJSON(p *logpage.Printer) error {
	if !optJSON && optJSONFile == "" {
		return nil
	}

	out, err := json.MarshalIndent(p.Tree(), "", "  ")
	if err != nil {
		return fail(logpage.StatusLogicError, "marshal: %v", err)
	}
	out = append(out, '\n')

	if optJSONFile != "" {
		if err := os.WriteFile(optJSONFile, out, 0o644); err != nil {
			return fail(logpage.StatusFileError, "cannot write %s: %v", optJSONFile, err)
		}
		return nil
	}

	_, err = os.Stdout.Write(out)
	return err
}
