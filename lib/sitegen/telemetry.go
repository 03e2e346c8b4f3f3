package sitegen

import "autobyte/lib/telemetry"

var tracer = telemetry.Tracer("autobyte.lib.sitegen")
