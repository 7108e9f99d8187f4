// SPDX-License-Identifier: MIT

// Package registry enumerates the closed set of integrator configuration ids:
// periodizing transforms, fit functions, generating-vector tables and
// execution targets.
//
// Ids are plain integers as they arrive from a binding or CLI layer. Zero is
// reserved for "use the default". Transform ids are partitioned by sign:
// negative ids name transforms without a degree (none, baker) and the Sidi
// family, positive ids name the two-degree Korobov family:
//
//	none        = -1
//	baker       = -2
//	sidi<r>     = -10-r              r in 1..MaxDegree   (-11 .. -16)
//	korobov<a>x<b> = 6*(a-1)+b       a,b in 1..MaxDegree ( 1 .. 36)
//
// A Family is the set of transforms and fit functions an integrator family
// was built with. It is fixed at construction; ids outside it are rejected by
// the dispatcher even when they are well-formed.
package registry
