// Package flowcast projects per-line-item cash flows over a fixed
// quarterly horizon and compares projects by net present value.
//
// The core functionalities include:
//   - Growth Curves: closed set of ramp shapes (linear, logistic, single
//     payment, step) mapping a quarter index to a completion fraction.
//   - Cash Flows: immutable per-quarter series built once from a small
//     set of ramp assumptions, in both nominal and discounted form,
//     together with a parallel "digital gallons" volume series and its
//     variable cost.
//   - Headcount Flows: staffing cost series derived from FTE counts per
//     year and a cost per FTE per quarter.
//   - Portfolio: flows grouped by project code, with per-project and
//     whole-portfolio rollups (NPV, volume, variable cost).
//
// This package serves as the foundational logic for the `fcs`
// command-line tool; ingestion of the source sheet lives in the
// smartsheet subpackage and presentation in the renderer subpackage.
package flowcast
