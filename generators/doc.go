// SPDX-License-Identifier: MIT
// Package: negcycle/generators
//
// Package generators produces the (n, edge_list) pairs that seed a graph:
// fixed topologies (Cycle, Complete), random topologies (GNP, DSF, RHG),
// and a plain-text edge-list reader (FromFile). None of these constructors
// touch weights or the sampling loop; every one of them returns data a
// graph.Graph can be built from directly.
package generators
