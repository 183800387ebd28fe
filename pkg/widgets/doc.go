// Package widgets is Aura's catalog of themed controls.
//
// Most widgets here are declarative property structs: construct them with a
// struct literal or the XxxOf helper, optionally override fields with the
// fluent WithXxx copies, and resolve them against a [theme.ThemeData] to get
// the final visual style. A zero field means "use the theme default" unless a
// widget documents otherwise.
//
// Two controls carry real behavior. [ItemRow] is the list-row panel whose
// layout engine grows one child to fill leftover width while wrap-flagged
// children drop to lines below. [CardStack] layers its items and either shows
// them as a static deck or navigates them one at a time with directional
// slide+fade transitions.
package widgets
