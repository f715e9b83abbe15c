/*
Package bimap is the storage core of a bidirectional map.

Bimap

A bidirectional map associates left values with right values such that every
value on either side maps to exactly one value on the other side. It is
assembled from two backend maps, a forward map from left to right and a
reverse map from right to left. Each association is stored once: the left
value and the right value are each split into two halves, one held by the
forward map and one held by the reverse map.

The module is organized in layers:

  - Package mem provides the split-ownership primitive. Share splits a value
    into two halves, Reunite joins them again and checks that they belong
    together. Wrapped presents a value as a distinct type for probing.

  - Package btree is a persistent B+ sum-tree. Items are kept in sequence and
    subtrees carry summaries, which allows seeking by any monotone dimension.

  - Package backend defines the contract a backend map fulfils, and package
    backend/ordered implements it on top of btree, ordered by key.

  - Package backend/backendtest checks backends for conformance.

Command semibench drives a forward and a reverse map with a random workload
and reports whether all pairs have been reunited.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package bimap
