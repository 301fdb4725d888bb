// Package device derives electrical parameters from measured sweeps.
//
// Three models share one loader and differ in how they treat the columns:
//
//   - Output: |V_ds|, |I_ds|; narrowed by target voltage; conductivity and
//     hysteresis.
//   - Transfer: signed V_g, sqrt|I_ds|; narrowed by root-current thresholds;
//     threshold voltage, mobility, reliability and electrical performance.
//   - TwoTerminal: signed V with negative edges trimmed, |I_d| and |I_s|;
//     conductivity and hysteresis per terminal.
//
// Mosfet groups an Output and a Transfer model of the same device.
//
// Each model segments its sweep into forward and backward arms once, at
// construction. Narrowing replaces the stored arms with a sub-range of
// themselves and never restores them; only Output keeps the arms as loaded.
// A model is not safe for concurrent use while it is being narrowed.
//
// Arm selectors are sweep.Direction and Terminal values. Parse user input with
// sweep.ParseDirection and ParseTerminal; out-of-range values are rejected
// before any fit is attempted.
package device
