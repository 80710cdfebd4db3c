// Package prompt asks for conversion inputs on a terminal. The survey-backed
// driver sits behind Driver so flows can be tested without a terminal.
package prompt
