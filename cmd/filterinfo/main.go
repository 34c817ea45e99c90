// Command filterinfo prints the frequency response of the filters and the
// pipeline of a CamillaDSP configuration file.
//
// Usage:
//
//	filterinfo -config FILE [flags]
//
// Examples:
//
//	filterinfo -config crossover.yml
//	filterinfo -config crossover.yml -freqs 50,1000,8000 -filter lowpass,highpass
//	filterinfo -config crossover.yml -rate 96000 -pipeline
//	filterinfo -config crossover.yml -points 20 -pipeline -unwrap
//	filterinfo -config room.yml -points 12
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-filtereval/dsp/filter/eval"
	"github.com/cwbudde/algo-filtereval/dsp/pipeline"
	"github.com/cwbudde/algo-filtereval/dsp/response"
	"github.com/cwbudde/algo-filtereval/dsp/spectrum"
)

const defaultFreqs = "20,100,1000,10000,20000"

// errUsage is returned for invalid invocations; the flag set has already
// printed the usage text.
var errUsage = errors.New("invalid usage")

func main() {
	log.SetFlags(0)
	log.SetPrefix("filterinfo: ")

	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		if errors.Is(err, errUsage) {
			os.Exit(2)
		}
		log.Fatal(err)
	}
}

type options struct {
	config   string
	rate     float64
	freqs    string
	points   int
	filters  string
	pipeline bool
	unwrap   bool
	verbose  bool
}

func parseFlags(args []string) (options, error) {
	var o options
	fs := flag.NewFlagSet("filterinfo", flag.ContinueOnError)
	fs.StringVar(&o.config, "config", "", "CamillaDSP configuration file (YAML)")
	fs.Float64Var(&o.rate, "rate", 0, "override devices.samplerate in Hz")
	fs.StringVar(&o.freqs, "freqs", defaultFreqs, "comma-separated probe frequencies in Hz")
	fs.IntVar(&o.points, "points", 0, "use N log-spaced frequencies from 20 Hz to 95% of Nyquist instead of -freqs")
	fs.StringVar(&o.filters, "filter", "", "comma-separated filter names to print (default all)")
	fs.BoolVar(&o.pipeline, "pipeline", false, "also print the response of every pipeline output channel")
	fs.BoolVar(&o.unwrap, "unwrap", false, "unwrap phase along the frequency axis instead of wrapping to ±180°")
	fs.BoolVar(&o.verbose, "v", false, "verbose output")
	fs.Usage = func() {
		out := fs.Output()
		fmt.Fprintf(out, "Usage: filterinfo -config FILE [flags]\n\n")
		fmt.Fprintf(out, "Prints gain, phase and stability of configured filters.\n\n")
		fmt.Fprintf(out, "Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if o.config == "" || fs.NArg() > 0 {
		fs.Usage()
		return o, errUsage
	}
	return o, nil
}

func run(args []string, stdout io.Writer) error {
	o, err := parseFlags(args)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(o.config)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	cfg, err := pipeline.ParseConfig(data)
	if err != nil {
		return err
	}
	if o.rate > 0 {
		cfg.Devices.SampleRate = o.rate
	}

	p, err := pipeline.New(cfg)
	if err != nil {
		return err
	}
	if o.verbose {
		log.Printf("config: %s", o.config)
		log.Printf("sample rate: %g Hz, %d in / %d out channels", p.SampleRate(), p.Inputs(), p.Outputs())
		log.Printf("capture: %s, playback: %s", p.Capture().Name(), p.Playback().Name())
	}

	freqs, err := frequencies(o, p.SampleRate())
	if err != nil {
		return err
	}

	names, err := selectFilters(p, o.filters)
	if err != nil {
		return err
	}

	if err := printFilters(stdout, p, cfg, names, freqs, o.unwrap); err != nil {
		return err
	}
	if o.pipeline {
		if _, err := fmt.Fprintln(stdout); err != nil {
			return err
		}
		return printPipeline(stdout, p, freqs, o.unwrap)
	}
	return nil
}

func frequencies(o options, fs float64) ([]float64, error) {
	if o.points > 0 {
		return response.LogGrid(20, 0.95*fs/2, o.points), nil
	}
	return parseFloatList(o.freqs)
}

func parseFloatList(s string) ([]float64, error) {
	var out []float64
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid frequency %q: %w", field, err)
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, errors.New("no frequencies given")
	}
	return out, nil
}

func selectFilters(p *pipeline.Pipeline, list string) ([]string, error) {
	if strings.TrimSpace(list) == "" {
		return p.FilterNames(), nil
	}
	var names []string
	for _, name := range strings.Split(list, ",") {
		name = strings.TrimSpace(name)
		if _, ok := p.Filter(name); !ok {
			return nil, fmt.Errorf("unknown filter %q", name)
		}
		names = append(names, name)
	}
	return names, nil
}

func printFilters(w io.Writer, p *pipeline.Pipeline, cfg pipeline.Config, names []string, freqs []float64, unwrap bool) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Filter\tType\tStable\tMax pole%s\n", freqHeader(freqs))
	for _, name := range names {
		e, _ := p.Filter(name)
		gain, phase := e.GainAndPhase(freqs)
		if unwrap {
			phase = spectrum.UnwrapPhaseDegrees(phase)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s%s\n",
			name, filterType(cfg.Filters[name]), e.IsStable(), poleRadius(e), cells(gain, phase))
	}
	return tw.Flush()
}

func printPipeline(w io.Writer, p *pipeline.Pipeline, freqs []float64, unwrap bool) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Output\t%s\n", strings.TrimPrefix(freqHeader(freqs), "\t"))
	gain, phase := p.GainAndPhase(freqs)
	for ch := range gain {
		ph := phase[ch]
		if unwrap {
			ph = spectrum.UnwrapPhaseDegrees(ph)
		}
		fmt.Fprintf(tw, "ch %d\t%s\n", ch, strings.TrimPrefix(cells(gain[ch], ph), "\t"))
	}
	return tw.Flush()
}

func filterType(fc eval.FilterConfig) string {
	if sub, ok := fc.Parameters["type"].(string); ok && fc.Type != eval.KindConv {
		return fc.Type + "/" + sub
	}
	return fc.Type
}

func poleRadius(e response.Evaluator) string {
	if pz, ok := e.(interface{ MaxPoleRadius() float64 }); ok {
		return fmt.Sprintf("%.4f", pz.MaxPoleRadius())
	}
	return "-"
}

func freqHeader(freqs []float64) string {
	var b strings.Builder
	for _, f := range freqs {
		fmt.Fprintf(&b, "\t%.6g Hz", f)
	}
	return b.String()
}

func cells(gain, phase []float64) string {
	var b strings.Builder
	for i := range gain {
		fmt.Fprintf(&b, "\t%.2f dB %.1f°", gain[i], phase[i])
	}
	return b.String()
}
