// Package quantities provides the standard named composite quantities
// and differential operators of the algebra: the field multivectors B, E,
// T, A, the four zets, the even and odd sub-algebras, the general
// multivector G, and the operators Dmu and DG.
//
// Each constructor returns a fresh value on every call: all terms carry
// magnitude 1, positive sign, and a symbolic coefficient named after
// their form, ready to be combined and simplified by the mvec package.
package quantities
