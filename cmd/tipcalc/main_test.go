package main

import (
	"bytes"
	"errors"
	"flag"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tipcalc/internal/bill"
	"tipcalc/internal/tip"
)

func TestParseFlags_Defaults(t *testing.T) {
	t.Setenv("TIPCALC_LOG_FILE", "/tmp/tipcalc-test.log")
	cfg, err := parseFlags(nil, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "", cfg.bill)
	assert.Equal(t, 1, cfg.split)
	assert.Equal(t, 0, cfg.tip)
	assert.Equal(t, "/tmp/tipcalc-test.log", cfg.logFile)
	assert.True(t, cfg.summary)
	assert.False(t, cfg.debug)
}

func TestParseFlags_Values(t *testing.T) {
	cfg, err := parseFlags([]string{"-bill", "50.00", "-split", "2", "-tip", "18", "-debug", "-summary=false"}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "50.00", cfg.bill)
	assert.Equal(t, 2, cfg.split)
	assert.Equal(t, 18, cfg.tip)
	assert.True(t, cfg.debug)
	assert.False(t, cfg.summary)
}

func TestParseFlags_Rejects(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"split zero", []string{"-split", "0"}},
		{"split too large", []string{"-split", "101"}},
		{"negative tip", []string{"-tip", "-1"}},
		{"tip too large", []string{"-tip", "101"}},
		{"non-numeric bill", []string{"-bill", "lots"}},
		{"unknown flag", []string{"-currency", "EUR"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseFlags(tt.args, io.Discard)
			assert.Error(t, err)
		})
	}
}

func TestParseFlags_BadBillWrapsSentinel(t *testing.T) {
	_, err := parseFlags([]string{"-bill", "-5"}, io.Discard)
	require.Error(t, err)
	assert.True(t, errors.Is(err, tip.ErrInvalidAmount))
}

func TestParseFlags_Help(t *testing.T) {
	var out bytes.Buffer
	_, err := parseFlags([]string{"-h"}, &out)
	assert.True(t, errors.Is(err, flag.ErrHelp))
	assert.Contains(t, out.String(), "Usage: tipcalc")
}

func TestInitialState(t *testing.T) {
	m := bill.NewMachineFrom(initialState(config{bill: "50.00", split: 2, tip: 18}))
	s := m.State()
	assert.Equal(t, 18, s.TipPercentage())
	assert.InDelta(t, 9.0, s.TipAmount, 1e-9)
	assert.InDelta(t, 29.5, s.TotalPerPerson, 1e-9)
}

func TestWriteSummary(t *testing.T) {
	m := bill.NewMachineFrom(initialState(config{bill: "50.00", split: 2, tip: 18}))

	var out bytes.Buffer
	writeSummary(&out, m.State())
	want := "" +
		"Bill:              $50.00\n" +
		"Split:             2\n" +
		"Tip (18%):         $9.00\n" +
		"Total per person:  $29.50\n"
	assert.Equal(t, want, out.String())
}

func TestWriteSummary_NoBill(t *testing.T) {
	var out bytes.Buffer
	writeSummary(&out, bill.New())
	assert.Equal(t, "No bill entered.\n", out.String())
}
