/*
Package persistent is the home of immutable persistent data structures, which
can be copied and modified efficiently, leaving the original unchanged.

Persistent data structures share structure between versions: a modified copy
of a vector of n elements shares all but O(log n) of its nodes with the
original. Handler stacks of effect requests are built on persistent vectors
(package vector), so capturing a continuation never modifies the request it
was captured from, and requests may be matched concurrently.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package persistent
