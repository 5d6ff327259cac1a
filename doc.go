// Package capgains computes realized capital gains for security sales using
// First-In-First-Out tax-lot matching.
//
// The engine consumes a finite, pre-sorted batch of buy/sell transactions per
// security and produces one closure report per matched lot, suitable for tax
// filing. Its building blocks:
//
//   - Transaction: one buy or sell event with amount, unit price, incidental
//     costs, and timestamp, plus the cost and proceeds arithmetic matching
//     relies on.
//   - FIFO: the per-security lot queue. Sales consume the oldest open lots
//     first, splitting the last lot when needed, and stock splits adjust
//     resting lots without touching their cost basis.
//   - Report: one realized closure linking an acquisition to a disposal,
//     mergeable with other closures of the same trade.
//   - Statement: the per-security fan-out, routing transactions, splits, and
//     report drains to the right queue.
//
// Parsing broker exports and formatting tax forms live outside the engine:
// package tiger turns Tiger Brokers activity statements into the canonical
// transaction stream, and package renderer formats the reports.
//
// Everything is plain in-memory computation with no I/O; callers must
// serialize access, and any engine error means the input data needs fixing
// upstream, not a retry.
package capgains
