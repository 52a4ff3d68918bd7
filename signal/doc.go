// Package signal provides time-series processing primitives for marine and
// structural dynamic response analysis: window functions, smoothing and
// tapering, zero-phase frequency-domain filters, mean-level crossing and
// peak statistics, Welch power spectral density estimation and
// autocorrelation.
//
// Every function is a pure transformation of its inputs into freshly
// allocated outputs. Nothing is mutated in place and there is no package
// state, so all functions are safe for concurrent use.
//
// Signals are uniformly sampled sequences of float64 (or complex128 for the
// complex filter variants) together with a scalar time step dt in seconds.
// Frequencies are in Hz.
package signal
