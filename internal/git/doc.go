// Package git translates resolved project git settings into concrete
// git CLI invocations and executes them.
//
// Two clone strategies exist:
//
//   - branch: a standard single-checkout clone into the project path.
//   - worktree: a bare clone into <project>/.bare with one linked
//     worktree for the default branch checked out beside it, leaving
//     room for further worktrees later.
//
// CommandsFor builds the invocation sequence purely; Cloner is the
// narrow capability interface the restore engine depends on, so tests
// substitute a fake instead of invoking a real git binary.
package git
