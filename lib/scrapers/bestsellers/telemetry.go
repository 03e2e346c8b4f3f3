package bestsellers

import "autobyte/lib/telemetry"

var tracer = telemetry.Tracer("autobyte.lib.scrapers.bestsellers")
