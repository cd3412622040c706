package main

import (
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"text/tabwriter"
	"time"

	"github.com/rs/zerolog"
	"github.com/zeebo/errs"
	"github.com/zeebo/mon"
	"github.com/zeebo/mon/monhandler"
	"github.com/zeebo/tachyon"
	"golang.org/x/sys/unix"
)

const defaultURL = "https://adventofcode.com/2025/day/7/input"

var (
	mode      = flag.String("mode", "splits", "query to run: splits, timelines, or both")
	input     = flag.String("input", "", "read the grid from this file instead of fetching")
	inputURL  = flag.String("url", defaultURL, "url to fetch the grid from")
	timeout   = flag.Duration("timeout", 30*time.Second, "http client timeout")
	stats     = flag.Bool("stats", false, "dump timing stats on exit")
	debugAddr = flag.String("debug.addr", "", "serve timing stats over http on this address")

	log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
)

func main() {
	flag.Parse()

	if *debugAddr != "" {
		go func() {
			err := http.ListenAndServe(*debugAddr, monhandler.Handler{})
			log.Error().Err(err).Msg("debug listener exited")
		}()
	}

	err := run()
	if *stats {
		dumpStats()
	}
	if err != nil {
		log.Fatal().Msgf("%+v", err)
	}
}

func run() error {
	text, err := load()
	if err != nil {
		return err
	}

	grid, err := tachyon.Parse(text)
	if err != nil {
		return err
	}
	log.Info().
		Int("height", grid.Height()).
		Int("width", grid.Width()).
		Int("start", grid.Start()).
		Msg("parsed grid")

	switch *mode {
	case "splits", "1":
		fmt.Println(tachyon.CountSplits(grid))
	case "timelines", "2":
		fmt.Println(tachyon.CountTimelines(grid))
	case "both":
		fmt.Println(tachyon.CountSplits(grid))
		fmt.Println(tachyon.CountTimelines(grid))
	default:
		return errs.New("unknown mode %q: use splits, timelines, or both", *mode)
	}
	return nil
}

func load() (string, error) {
	if *input != "" {
		return readFile(*input)
	}
	return fetch(*inputURL)
}

// readFile maps the file instead of copying it through a read buffer. the
// mapping is released once the text has been handed off as a string.
func readFile(path string) (string, error) {
	fh, err := os.Open(path)
	if err != nil {
		return "", errs.Wrap(err)
	}
	defer fh.Close()

	fi, err := fh.Stat()
	if err != nil {
		return "", errs.Wrap(err)
	}
	if fi.Size() == 0 {
		return "", nil
	}

	buf, err := unix.Mmap(int(fh.Fd()), 0, int(fi.Size()),
		unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return "", errs.Wrap(err)
	}
	defer unix.Munmap(buf)

	return string(buf), nil
}

func fetch(url string) (string, error) {
	session := os.Getenv("AOC_SESSION")
	if session == "" {
		return "", errs.New("AOC_SESSION environment variable is not set")
	}

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return "", errs.Wrap(err)
	}
	req.Header.Set("Cookie", "session="+session)

	log.Info().Str("url", url).Msg("fetching grid")

	client := &http.Client{Timeout: *timeout}
	resp, err := client.Do(req)
	if err != nil {
		return "", errs.Wrap(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errs.New("fetching %s: unexpected status %s", url, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errs.Wrap(err)
	}
	return string(body), nil
}

func dumpStats() {
	tw := tabwriter.NewWriter(os.Stderr, 0, 4, 2, ' ', 0)
	defer tw.Flush()

	mon.Times(func(name string, state *mon.State) bool {
		sum, avg := state.Average()
		fmt.Fprintf(tw, "%s\t%v\t%v\t%v\n",
			name, state.Total(), time.Duration(sum), time.Duration(avg))
		return true
	})
}
