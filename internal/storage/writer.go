package storage

import (
	"encoding/json"
	"os"

	"github.com/qepting91/reddit-hotwalk/internal/domain"
)

// TitleRecord is one walked title in export order
type TitleRecord struct {
	Subreddit string `json:"subreddit"`
	Position  int    `json:"position"`
	Title     string `json:"title"`
}

// WriterService appends NDJSON records to FilePath
type WriterService struct {
	FilePath string
}

func (w *WriterService) WriteTitles(sub string, titles []string) error {
	return w.write(func(enc *json.Encoder) error {
		for i, t := range titles {
			if err := enc.Encode(TitleRecord{Subreddit: sub, Position: i, Title: t}); err != nil {
				return err
			}
		}
		return nil
	})
}

func (w *WriterService) WriteTally(entries []domain.Entry) error {
	return w.write(func(enc *json.Encoder) error {
		for _, e := range entries {
			if err := enc.Encode(e); err != nil {
				return err
			}
		}
		return nil
	})
}

func (w *WriterService) write(fn func(*json.Encoder) error) error {
	f, err := os.OpenFile(w.FilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}

	// Write as NDJSON
	if err := fn(json.NewEncoder(f)); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
