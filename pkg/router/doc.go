// Package router keeps a table of named, parameterized routes and reverses
// them into URLs.
//
// Patterns use chi syntax ("/items/{id}", "/items/{id:[0-9]+}",
// "/assets/*"), so a Mux can mount the same patterns on a chi router while
// templates resolve them by name. Routes can also be imported from the
// operations of an OpenAPI 3 document.
package router
