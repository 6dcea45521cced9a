package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"fansite/internal/config"
	"fansite/internal/model"
	"fansite/internal/mq"
	"fansite/internal/parser"
	"fansite/internal/tracker"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// feedBuffer is the per-worker channel size in concurrent ingestion
const feedBuffer = 1024

// Options represents the tuning of an Analyzer
type Options struct {
	RunID      string
	Window     time.Duration
	Login      tracker.LoginPolicy
	Concurrent bool
}

// OptionsFromConfig builds Options from the tracker configuration
func OptionsFromConfig(runID string, cfg *config.TrackerConfig) Options {
	return Options{
		RunID:  runID,
		Window: cfg.Window,
		Login: tracker.LoginPolicy{
			Method:        cfg.LoginMethod,
			Path:          cfg.LoginPath,
			Protocol:      cfg.LoginProtocol,
			FailureWindow: cfg.FailureWindow,
			MaxFailures:   cfg.MaxFailures,
			BlockDuration: cfg.BlockDuration,
		},
		Concurrent: cfg.Concurrent,
	}
}

// Analyzer drives the four trackers over one access log stream and
// persists what they found.
//
// The trackers themselves have no locking; mu serializes every writer and
// reader of the Analyzer.
type Analyzer struct {
	mu   sync.Mutex
	opts Options

	hosts     *tracker.ActiveHostsTracker
	bandwidth *tracker.BandwidthTracker
	window    *tracker.TrafficWindowTracker
	logins    *tracker.LoginBlockTracker
	stats     model.IngestStats

	reports  ReportStore
	archive  BlockedStore
	producer mq.ProducerInterface

	// persisted counts the blocked requests already archived and published
	persisted int
}

// NewAnalyzer creates a new Analyzer. Any of the sinks may be nil.
func NewAnalyzer(opts Options, reports ReportStore, archive BlockedStore, producer mq.ProducerInterface) *Analyzer {
	return &Analyzer{
		opts:      opts,
		hosts:     tracker.NewActiveHostsTracker(),
		bandwidth: tracker.NewBandwidthTracker(),
		window:    tracker.NewTrafficWindowTracker(opts.Window),
		logins:    tracker.NewLoginBlockTracker(opts.Login),
		reports:   reports,
		archive:   archive,
		producer:  producer,
	}
}

// RunID returns the identifier reports and archived rows are saved under
func (a *Analyzer) RunID() string {
	return a.opts.RunID
}

// Resume seeds the login blocker with the blocks left by a previous run
func (a *Analyzer) Resume(ctx context.Context) error {
	if a.reports == nil {
		return nil
	}

	blocks, err := a.reports.LoadActiveBlocks(ctx)
	if err != nil {
		return fmt.Errorf("failed to load active blocks: %w", err)
	}

	a.mu.Lock()
	a.logins.Seed(blocks...)
	a.mu.Unlock()

	log.Info().Int("blocks", len(blocks)).Msg("Resumed active login blocks")
	return nil
}

// sinks returns the per-tracker record consumers, in fan-out order
func (a *Analyzer) sinks() []func(model.LogRecord) {
	return []func(model.LogRecord){
		func(rec model.LogRecord) { a.hosts.Record(rec.Host) },
		func(rec model.LogRecord) { a.bandwidth.Record(rec.Path, rec.Bytes) },
		func(rec model.LogRecord) {
			if rec.HasTime {
				a.window.Record(rec.Timestamp)
			}
		},
		func(rec model.LogRecord) {
			if rec.HasTime {
				a.logins.Record(rec)
			}
		},
	}
}

// IngestLine parses and feeds one raw line. Lines that cannot be used at
// all return the parse error; a line with an unreadable timestamp still
// counts for hosts and bandwidth and returns nil.
func (a *Analyzer) IngestLine(line string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	rec, err := a.parse(0, line)
	if err != nil {
		return err
	}
	for _, sink := range a.sinks() {
		sink(rec)
	}
	return nil
}

// IngestReader feeds every line of r. With Options.Concurrent each tracker
// consumes the stream in its own worker; the results are the same as a
// sequential pass.
func (a *Analyzer) IngestReader(ctx context.Context, r io.Reader) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	sc := parser.NewScanner(r)
	sinks := a.sinks()

	if !a.opts.Concurrent {
		for sc.Scan() {
			if err := ctx.Err(); err != nil {
				return err
			}
			rec, err := a.parse(sc.Line(), sc.Text())
			if err != nil {
				continue
			}
			for _, sink := range sinks {
				sink(rec)
			}
		}
		return sc.Err()
	}

	g, gctx := errgroup.WithContext(ctx)

	feeds := make([]chan model.LogRecord, len(sinks))
	for i, sink := range sinks {
		feed := make(chan model.LogRecord, feedBuffer)
		feeds[i] = feed
		g.Go(func() error {
			for rec := range feed {
				sink(rec)
			}
			return nil
		})
	}

	g.Go(func() error {
		defer func() {
			for _, feed := range feeds {
				close(feed)
			}
		}()

		for sc.Scan() {
			rec, err := a.parse(sc.Line(), sc.Text())
			if err != nil {
				continue
			}
			for _, feed := range feeds {
				select {
				case feed <- rec:
				case <-gctx.Done():
					return gctx.Err()
				}
			}
		}
		return sc.Err()
	})

	return g.Wait()
}

// parse turns a line into a record and keeps the line counters
func (a *Analyzer) parse(lineNo int, line string) (model.LogRecord, error) {
	a.stats.TotalLines++

	rec, err := parser.ParseLine(line)
	switch {
	case err == nil:
		return rec, nil
	case errors.Is(err, parser.ErrUnparsableTimestamp):
		a.stats.UntimedLines++
		log.Debug().Err(err).Int("line", lineNo).Str("host", rec.Host).Msg("Counting record without timestamp")
		return rec, nil
	case errors.Is(err, parser.ErrEmptyLine):
		a.stats.SkippedLines++
		return rec, err
	default:
		a.stats.SkippedLines++
		log.Warn().Err(err).Int("line", lineNo).Msg("Skipping malformed log line")
		return rec, err
	}
}

// Finish closes the open traffic window at the end of the stream
func (a *Analyzer) Finish() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.window.Flush()
}

// Report returns the current results of every tracker
func (a *Analyzer) Report() *model.Report {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.report()
}

func (a *Analyzer) report() *model.Report {
	r := &model.Report{
		RunID:       a.opts.RunID,
		Hosts:       a.hosts.TopTen(),
		Resources:   a.bandwidth.TopTen(),
		Hours:       a.window.TopTen(),
		Blocked:     a.logins.Blocked(),
		Stats:       a.stats,
		GeneratedAt: time.Now(),
	}
	if w, ok := a.window.Current(); ok {
		open := w.Ranked()
		r.OpenWindow = &open
	}
	return r
}

// Persist saves the report and the active blocks, archives the blocked
// requests not archived yet and publishes them. Sink failures are logged
// and returned together; they never roll back the trackers.
func (a *Analyzer) Persist(ctx context.Context) error {
	a.mu.Lock()
	report := a.report()
	blocks := a.logins.ActiveBlocks()
	fresh := a.logins.BlockedRecords()[a.persisted:]
	a.persisted += len(fresh)
	a.mu.Unlock()

	var errs []error

	if a.reports != nil {
		if err := a.reports.SaveReport(ctx, report); err != nil {
			log.Error().Err(err).Str("run_id", report.RunID).Msg("Failed to save report")
			errs = append(errs, err)
		}
		if err := a.reports.SaveActiveBlocks(ctx, blocks); err != nil {
			log.Error().Err(err).Str("run_id", report.RunID).Msg("Failed to save active blocks")
			errs = append(errs, err)
		}
	}

	if a.archive != nil && len(fresh) > 0 {
		rows := make([]model.BlockedRequest, 0, len(fresh))
		for _, rec := range fresh {
			rows = append(rows, model.BlockedRequest{
				RunID:       report.RunID,
				Host:        rec.Host,
				Line:        rec.Raw,
				RequestTime: rec.Timestamp,
			})
		}
		if err := a.archive.SaveBlockedRequests(ctx, rows); err != nil {
			log.Error().Err(err).Int("rows", len(rows)).Msg("Failed to archive blocked requests")
			errs = append(errs, err)
		}
	}

	if a.producer != nil {
		for _, rec := range fresh {
			msg := &mq.BlockedRequestMessage{
				RunID:       report.RunID,
				Host:        rec.Host,
				Line:        rec.Raw,
				RequestTime: rec.Timestamp,
			}
			if err := a.producer.SendBlockedRequest(ctx, msg); err != nil {
				log.Error().Err(err).Str("host", rec.Host).Msg("Failed to publish blocked request")
				errs = append(errs, err)
			}
		}
	}

	return errors.Join(errs...)
}

// Reset bounds memory in long-running use: host and path counts are
// zeroed, traffic windows and login blocks dropped. Blocked output is kept.
func (a *Analyzer) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.hosts.Reset()
	a.bandwidth.Reset()
	a.window.Reset()
	a.logins.Reset()
}

// Clear drops all tracker state and line counters
func (a *Analyzer) Clear() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.hosts.Clear()
	a.bandwidth.Clear()
	a.window.Reset()
	a.logins.Clear()
	a.stats = model.IngestStats{}
	a.persisted = 0
}
