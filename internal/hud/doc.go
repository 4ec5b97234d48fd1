// Package hud decides, once per frame, which directional HUD cues warn the
// user about the nearest obstacle ahead.
//
// A pass has three steps. The Projector measures every obstacle against the
// head basis as cosines (x, y) and flattened gaze angles. SelectTarget picks
// the closest in-range obstacle inside the front cone. Activate turns the
// target's bounds into north/east/south/west activations plus one size
// multiplier that grows as the obstacle gets closer.
//
// Cosine thresholds are compared rather than raw angles: looking straight at
// an obstacle edge puts that edge at cosine 0, so a single threshold in
// [0, 1] governs all four sides.
package hud
