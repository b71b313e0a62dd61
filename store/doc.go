// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store implements all reads and writes against persistent state. It
is the contract between the HTTP boundary and the database: handlers call
these functions and never touch SQL themselves.

# Construction

	st := store.New(conn, cfg.VotePolicy)

# Pod Channel Operations

  - ListPods / CreatePod / GetPod
  - CreateUpload / GetUpload / ListUploads
  - AddInteraction / GetInteractions
  - VoteTally / ReactionTally / CommentSummary

CreatePod reports a taken name as ErrDuplicateName. AddInteraction and
CreateUpload refuse an empty user name with ErrEmptyUserName, performing no
write; the UI re-prompts instead of crashing.

# Vote Policy

Pod-style votes and reactions are append-only by default
(PolicyAllowMultiple): a member who votes twice is counted twice, which is
the historically observed behavior. With PolicyDedupePerUser the store
instead upserts on (upload, user, kind) so only the latest submission per
member counts. Comments are never deduplicated on write.

# Live Sessions

Each pod is a two-state machine keyed on live_upload_id:

	Idle ──GoLive(pod, upload, host)──▶ Live
	Live ──EndSession(pod)───────────▶ Idle

GoLive validates that the upload belongs to the pod (ErrCrossPodReference
otherwise) and records the acting member as the session host. Concurrent
GoLive calls resolve last-writer-wins. EndSessionOnLogout clears the session
only when the leaving member is the recorded host; an explicit EndSession is
open to any member.

# Insight Review

  - CreateRetro / ListRetros
  - CreateInsight / ListInsights
  - AddInsightComment / ListInsightComments
  - UpsertVote / GetVote / VoteBreakdown

UpsertVote guarantees exactly one vote row per (insight, user): a revote
overwrites depth, usefulness, and decision in place. The check-then-act runs
in a transaction, with the table's unique constraint as a backstop against
concurrent submissions.

# Errors

Sentinels callers are expected to branch on:

	ErrNotFound
	ErrDuplicateName
	ErrEmptyUserName
	ErrCrossPodReference

Everything else is wrapped with context via fmt.Errorf("%w").
*/
package store
