// Package navhistory implements per-document cursor navigation history.
//
// A Store keeps, for every open document, a bounded list of recorded
// positions (oldest first) and an index counting how many steps back from the
// most recent entry the user currently is. Index 0 is the present; -1 is the
// entry before it, and so on.
//
// Recording a new position while backed up drops every entry after the
// current one, the way a browser drops forward history when a new page is
// visited.
//
// The store is not safe for concurrent use. Hosts call it from their UI
// thread.
package navhistory
