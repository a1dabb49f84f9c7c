// Package processor implements context processor definitions: named,
// categorised, configurable units that transform a content model.
//
// Definitions form a parent chain. Extend layers overrides on top of an
// existing definition without touching it; unset properties resolve through
// the nearest ancestor that sets them, while configuration is merged across
// the whole chain with nearer layers winning.
package processor
