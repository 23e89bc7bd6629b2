// Package flash migrates server-rendered flash markup into toasts.
//
// Budgeteer renders flash messages as hidden Bootstrap alerts:
//
//	<div class="alert alert-warning d-none">Low balance</div>
//
// Migrate runs once per page serve. Every node carrying both the
// "alert" and "d-none" classes produces exactly one toast and is
// removed from the document, so no legacy alert survives migration.
// Severity is a first-match-wins check over success, warning, danger;
// anything else is info.
package flash
