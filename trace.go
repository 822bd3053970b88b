package main

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

/**
 * @file trace.go
 * @brief Binary trajectory trace writer/reader.
 *
 * Wire format: a 4-byte tick count placeholder, rewritten on Close; per
 * tick a 32-bit little-endian agent count (fixed-width, not
 * size-of-pointer-width, for portability), N (x,y) int16 pairs, a 64-bit
 * sentinel, then a HeatmapHeight*HeatmapWidth byte trailer. Framing
 * mirrors dragonfly's own use of stdlib
 * encoding/binary for its wire protocol (server/query_protocol.go) rather
 * than a general-purpose serialization library.
 */

const (
	traceSentinel = uint64(0xFFFF0000FFFF0000)

	// HeatmapWidth and HeatmapHeight are the heatmap's dimensions at 5x
	// scale. This core supplies only positions; the heatmap subsystem
	// is an external collaborator, so the trailer is written zero-filled.
	HeatmapWidth  = 800
	HeatmapHeight = 600
)

// TraceWriter streams a binary trajectory trace to a file.
type TraceWriter struct {
	f         *os.File
	tickCount uint32
}

// NewTraceWriter creates (truncating) the trace file at path and writes the
// 4-byte tick-count placeholder.
func NewTraceWriter(path string) (*TraceWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create trace %q: %w", path, err)
	}
	if err := binary.Write(f, binary.LittleEndian, uint32(0)); err != nil {
		f.Close()
		return nil, fmt.Errorf("write trace header %q: %w", path, err)
	}
	return &TraceWriter{f: f}, nil
}

// WriteTick appends one tick's positions, sentinel, and zero-filled heatmap
// trailer.
func (t *TraceWriter) WriteTick(positions []P) error {
	if err := binary.Write(t.f, binary.LittleEndian, uint32(len(positions))); err != nil {
		return err
	}
	for _, p := range positions {
		if err := binary.Write(t.f, binary.LittleEndian, int16(p.X)); err != nil {
			return err
		}
		if err := binary.Write(t.f, binary.LittleEndian, int16(p.Y)); err != nil {
			return err
		}
	}
	if err := binary.Write(t.f, binary.LittleEndian, traceSentinel); err != nil {
		return err
	}
	if _, err := t.f.Write(make([]byte, HeatmapWidth*HeatmapHeight)); err != nil {
		return err
	}
	t.tickCount++
	return nil
}

// Close rewrites the tick-count placeholder with the true count and closes
// the file.
func (t *TraceWriter) Close() error {
	if _, err := t.f.Seek(0, io.SeekStart); err != nil {
		return err
	}
	if err := binary.Write(t.f, binary.LittleEndian, t.tickCount); err != nil {
		return err
	}
	return t.f.Close()
}

// ReadTrace reads back a trace file written by TraceWriter, returning the
// recorded tick count and the per-tick position streams.
func ReadTrace(path string) (uint32, [][]P, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, nil, fmt.Errorf("open trace %q: %w", path, err)
	}
	defer f.Close()

	var tickCount uint32
	if err := binary.Read(f, binary.LittleEndian, &tickCount); err != nil {
		return 0, nil, fmt.Errorf("read trace header %q: %w", path, err)
	}

	heat := make([]byte, HeatmapWidth*HeatmapHeight)
	var ticks [][]P
	for {
		var n uint32
		if err := binary.Read(f, binary.LittleEndian, &n); err != nil {
			if err == io.EOF {
				break
			}
			return 0, nil, fmt.Errorf("read trace %q: %w", path, err)
		}

		positions := make([]P, n)
		for i := range positions {
			var x, y int16
			if err := binary.Read(f, binary.LittleEndian, &x); err != nil {
				return 0, nil, err
			}
			if err := binary.Read(f, binary.LittleEndian, &y); err != nil {
				return 0, nil, err
			}
			positions[i] = P{int(x), int(y)}
		}

		var sentinel uint64
		if err := binary.Read(f, binary.LittleEndian, &sentinel); err != nil {
			return 0, nil, err
		}
		if sentinel != traceSentinel {
			return 0, nil, fmt.Errorf("trace %q: corrupt tick record (bad sentinel)", path)
		}
		if _, err := io.ReadFull(f, heat); err != nil {
			return 0, nil, err
		}

		ticks = append(ticks, positions)
	}

	return tickCount, ticks, nil
}
