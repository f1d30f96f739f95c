// Package vsr converts the acquisition system's proprietary time
// representations: the (year, day-of-year, seconds-since-midnight)
// tuple, the "YYYY DDD SSSSS" marker string the recorders write as a
// heartbeat, and the "DDD/HH:MM:SS" script timestamps. Everything is
// UTC with a fixed zero offset; there is no daylight-saving adjustment
// anywhere in these formats.
package vsr
