package pfac

import "github.com/rs/zerolog"

// defaultLogger is silent until the embedding application configures
// one via WithLogger, matching how libraries in a larger detection
// pipeline are expected to stay quiet by default.
var defaultLogger = zerolog.Nop()
