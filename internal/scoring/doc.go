// Package scoring holds the GigScore reputation math: the community and
// volunteer sub-scores, the seven-component aggregate and the badge rules.
//
// Everything here is pure. Callers load the signals and persist results.
package scoring
