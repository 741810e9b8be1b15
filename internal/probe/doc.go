// Package probe runs ffprobe against a video file and decides, per stream
// type, whether the existing codec can be copied or must be re-encoded.
package probe
