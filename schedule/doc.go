// SPDX-License-Identifier: MIT

// Package schedule builds the randomized run order of a benchmark experiment
// and dispatches every run, one at a time, to the unit that executes it.
//
// Build → Shuffle → Plan:
//
//	entries := Build(domain)      // environments × algorithms × reps, fixed order
//	Shuffle(entries, seed)        // Fisher–Yates, rand.NewSource(seed), seed verbatim
//	plan, _ := Plan(domain, seed) // RunID = 1-based shuffled position
//
// For a fixed seed the plan is identical on every run and machine; different
// seeds give different orders over the same multiset of entries.
//
// Dispatch:
//   - Scheduler.Run resolves each entry through a Resolver (usually a Table
//     keyed by environment), invokes the Unit with Reps=1 and the shared
//     results path, and stops at the first failure with a *UnitError.
//   - Rows appended by earlier runs stay in the log; there is no rollback.
//   - CommandUnit runs an external program from an argv template;
//     FuncUnit runs in-process.
//
// Concurrency:
//   - Strictly sequential; each unit blocks the scheduler until it returns.
package schedule
