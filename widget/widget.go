// SPDX-License-Identifier: Unlicense OR MIT

/*
Package widget provides basic input-consuming widgets: labels, buttons
and frames. They implement the capability interfaces of io/input and
exist primarily as dispatch targets; painting is left to the render
backend.
*/
package widget
