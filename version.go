package medcalc

// Version is the release of the medcalc service and library.
var Version = "0.2.0"
