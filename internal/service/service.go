// Package service is the public surface. Every failure is logged and turned
// into the operation's sentinel: 0 subscribers, a "None" line, a nil title
// list, or no tally output.
package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/qepting91/reddit-hotwalk/internal/domain"
	"github.com/qepting91/reddit-hotwalk/internal/listing"
	"github.com/qepting91/reddit-hotwalk/internal/tally"
)

const (
	TopLimit    = 10
	FailureLine = "None"
)

type Service struct {
	collector domain.Collector
	out       io.Writer
	logger    *slog.Logger
}

func New(c domain.Collector, out io.Writer, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{collector: c, out: out, logger: logger}
}

func (s *Service) NumberOfSubscribers(ctx context.Context, sub string) int {
	n, err := s.collector.Subscribers(ctx, sub)
	if err != nil {
		s.logger.Warn("Subscriber lookup failed", "sub", sub, "err", err)
		return 0
	}
	return n
}

// TopTen prints the first ten hot titles, or a single FailureLine
func (s *Service) TopTen(ctx context.Context, sub string) {
	titles, err := listing.Top(ctx, s.collector, sub, TopLimit)
	if err != nil {
		s.logger.Warn("Top listing failed", "sub", sub, "err", err)
		fmt.Fprintln(s.out, FailureLine)
		return
	}
	for _, t := range titles {
		fmt.Fprintln(s.out, t)
	}
}

// Recurse returns every hot title, or nil on any failure
func (s *Service) Recurse(ctx context.Context, sub string) []string {
	titles, err := s.walk(ctx, sub)
	if err != nil {
		return nil
	}
	return titles
}

// CountWords prints the keyword tally over all hot titles and returns the
// printed entries. Invalid input or a failed walk prints nothing.
func (s *Service) CountWords(ctx context.Context, sub string, words []string) ([]domain.Entry, error) {
	entries, err := s.count(ctx, sub, words)
	if err != nil {
		return nil, err
	}
	if err := tally.Write(s.out, entries); err != nil {
		s.logger.Warn("Writing tally failed", "sub", sub, "err", err)
		return nil, err
	}
	return entries, nil
}

func (s *Service) count(ctx context.Context, sub string, words []string) ([]domain.Entry, error) {
	if err := domain.ValidSubreddit(sub); err != nil {
		s.logger.Warn("Tally skipped", "sub", sub, "err", err)
		return nil, err
	}
	if len(words) == 0 {
		s.logger.Warn("Tally skipped", "sub", sub, "err", domain.ErrNoKeywords)
		return nil, domain.ErrNoKeywords
	}

	titles, err := s.walk(ctx, sub)
	if err != nil {
		return nil, err
	}
	return tally.Count(titles, words), nil
}

func (s *Service) walk(ctx context.Context, sub string) ([]string, error) {
	titles, err := listing.Walk(ctx, s.collector, sub)
	if err != nil {
		s.logger.Warn("Hot walk failed", "sub", sub, "err", err)
		return nil, err
	}
	s.logger.Debug("Hot walk complete", "sub", sub, "titles", len(titles))
	return titles, nil
}
