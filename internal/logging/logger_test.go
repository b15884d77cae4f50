/*
 * logger_test.go, part of asmap.
 *
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

package logging

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    zapcore.Level
		wantErr bool
	}{
		{"debug", zapcore.DebugLevel, false},
		{"INFO", zapcore.InfoLevel, false},
		{"", zapcore.InfoLevel, false},
		{"warn", zapcore.WarnLevel, false},
		{"error", zapcore.ErrorLevel, false},
		{"loud", zapcore.InfoLevel, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestNew(t *testing.T) {
	l, err := New(Config{Level: "debug", Format: "json", Output: filepath.Join(t.TempDir(), "log.json")})
	require.NoError(t, err)
	l.Info("hello", String("k", "v"))
	assert.NoError(t, l.Sync())

	_, err = New(Config{Format: "xml"})
	assert.Error(t, err)
	_, err = New(Config{Level: "loud"})
	assert.Error(t, err)
}

func TestFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := FromCore(core).Named("perceive").With(String("ligand", "LIG"))
	l.Info("thresholds", Float64("hbond", 3.2), Int("n", 4), Bool("subsites", true), Strings("classes", []string{"hbond"}))
	l.Warn("failed", Err(errors.New("boom")))
	l.Debug("nil error", Err(nil))

	entries := logs.All()
	require.Len(t, entries, 3)
	assert.Equal(t, "perceive", entries[0].LoggerName)
	ctx := entries[0].ContextMap()
	assert.Equal(t, "LIG", ctx["ligand"])
	assert.Equal(t, 3.2, ctx["hbond"])
	assert.Equal(t, int64(4), ctx["n"])
	assert.Equal(t, true, ctx["subsites"])
	assert.Equal(t, "boom", entries[1].ContextMap()["error"])
	assert.Equal(t, "<nil>", entries[2].ContextMap()["error"])
}

func TestNop(t *testing.T) {
	l := NewNop()
	l.Info("ignored")
	assert.NoError(t, l.With(String("a", "b")).Named("x").Sync())
}
