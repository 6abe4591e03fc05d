// Package mulog is a minimal leveled logging facade: a severity
// threshold, one pluggable sink, and nothing else.
//
// # Model
//
// A Logger holds two pieces of state: the installed Sink and the
// severity threshold (default InfoLevel). Log forwards every message to
// the sink whenever one is installed; the sink decides whether to emit
// by re-checking WillLog. This lets a sink deliberately ignore the
// threshold, for example to keep a full audit trail.
//
// # Message variants
//
// The message payload type is fixed per Logger instantiation:
//
//	simple := mulog.New[string]()      // pre-rendered messages
//	logger := mulog.New[mulog.Entry]() // printf-style, rendered by the sink
//
// In the formatted variant the logger never renders anything itself; the
// format and arguments travel to the sink untouched, so a sink may route
// them onward instead of rendering locally.
//
// # Usage
//
// Install a sink and log:
//
//	logger := mulog.New[mulog.Entry]()
//	logger.SetSink(mulog.StdoutSink(logger))
//	logger.Log(mulog.InfoLevel, mulog.Msgf("listening on %s", addr))
//
// Or use the package-level default logger:
//
//	mulog.SetSink(mulog.StdoutSink(mulog.Default()))
//	mulog.Infof("listening on %s", addr)
//
// # Disabling at build time
//
// Building with -tags mulog_off turns the package-level functions into
// no-ops. A Logger with no sink installed is already silent.
package mulog
