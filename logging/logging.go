package logging

import (
	"context"
	"fmt"
	"os"

	"github.com/ignisVeneficus/wifiportal/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.mau.fi/zeroconfig"
	"gopkg.in/yaml.v3"
)

const (
	FieldFunc    = "func"
	FieldEvent   = "event"
	FieldResult  = "result"
	FieldParams  = "params"
	FieldTraceID = "trace_id"

	// TraceIDKey is the gin context key of the request id.
	TraceIDKey = "trace_id"

	eventEnter = "func.enter"
	eventExit  = "func.exit"
)

// ObjectWithLevel is implemented by values whose log representation grows
// with the verbosity of the event.
type ObjectWithLevel interface {
	MarshalZerologObjectWithLevel(e *zerolog.Event, level zerolog.Level)
}

type withLevel struct {
	level zerolog.Level
	obj   ObjectWithLevel
}

func WithLevel(level zerolog.Level, obj ObjectWithLevel) zerolog.LogObjectMarshaler {
	return withLevel{level: level, obj: obj}
}

func (w withLevel) MarshalZerologObject(e *zerolog.Event) {
	if w.obj != nil {
		w.obj.MarshalZerologObjectWithLevel(e, w.level)
	}
}

func Uint64If(e *zerolog.Event, k string, v *uint64) {
	if v != nil {
		e.Uint64(k, *v)
	}
}

func StrIf(e *zerolog.Event, k string, v *string) {
	if v != nil {
		e.Str(k, *v)
	}
}

func traceID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(TraceIDKey).(string)
	return id
}

// Enter logs the start of fn at trace level and returns a logger carrying the
// function name and trace id for the matching Exit/ExitErr.
func Enter(ctx context.Context, fn string, params map[string]any) zerolog.Logger {
	lc := log.Logger.With().Str(FieldFunc, fn)
	if id := traceID(ctx); id != "" {
		lc = lc.Str(FieldTraceID, id)
	}
	logger := lc.Logger()
	ev := logger.Trace().Str(FieldEvent, eventEnter)
	if len(params) > 0 {
		ev = ev.Interface(FieldParams, params)
	}
	ev.Msg("")
	return logger
}

func Exit(logger zerolog.Logger, result string, params map[string]any) {
	ev := logger.Debug().Str(FieldEvent, eventExit).Str(FieldResult, result)
	if len(params) > 0 {
		ev = ev.Interface(FieldParams, params)
	}
	ev.Msg("")
}

func ExitErr(logger zerolog.Logger, err error) {
	logger.Error().Str(FieldEvent, eventExit).Str(FieldResult, "error").Err(err).Msg("")
}

// Configure builds the global logger from a zeroconfig YAML document.
func Configure(doc []byte) error {
	var cfg zeroconfig.Config
	if err := yaml.Unmarshal(doc, &cfg); err != nil {
		return fmt.Errorf("logging config is not valid yaml: %w", err)
	}
	logger, err := cfg.Compile()
	if err != nil {
		return fmt.Errorf("logging config rejected by zeroconfig: %w", err)
	}
	log.Logger = *logger
	return nil
}

// LoadLogging reads the file named by the log config environment variable.
// The process cannot run without it.
func LoadLogging() {
	path := config.GetLogConfigPath()
	doc, err := os.ReadFile(path)
	if err == nil {
		err = Configure(doc)
	}
	if err != nil {
		log.Logger.Fatal().Err(err).Str("env", config.LogConfigEnv).Str("path", path).Msg("cannot set up logging")
	}
}
