// SPDX-License-Identifier: MIT
// Copyright (c) 2013-2018 Devin Acker

// Package applog is the shared logging entry point for the exhal command
// line tools exhal and inhal (sniff prints its hits directly and does not
// use it). It wraps logrus so each of those binaries logs the same way
// without repeating formatter/level setup.
package applog

import (
	"os"

	"github.com/sirupsen/logrus"
)

var log = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	l.SetLevel(logrus.InfoLevel)
	return l
}

// SetVerbose raises the log level to debug, enabling Debugf output.
func SetVerbose(verbose bool) {
	if verbose {
		log.SetLevel(logrus.DebugLevel)
		return
	}
	log.SetLevel(logrus.InfoLevel)
}

// Info logs an informational message.
func Info(format string, args ...any) {
	log.Infof(format, args...)
}

// Debugf logs a message visible only when SetVerbose(true) has been called.
func Debugf(format string, args ...any) {
	log.Debugf(format, args...)
}

// Warn logs a warning.
func Warn(format string, args ...any) {
	log.Warnf(format, args...)
}

// Error logs an error.
func Error(format string, args ...any) {
	log.Errorf(format, args...)
}
