/*
Package hotlib is a hot loader for native game modules built as platform
shared libraries.

# License

Source codes are under Apache License Version 2.0.

# Underwater

 1. The host keeps running while an external build rewrites the module
    artifact on disk, each reload stages a private copy under libcopies and
    loads the copy, never the artifact itself.
 2. Staging sidesteps the exclusive file lock some platforms place on a
    mapped library, which would otherwise block the rebuild forever.
 3. Every staged copy name embeds its generation number, a copy is never
    reused or overwritten while a generation may still execute from it.
 4. A failed reload is the normal build-in-progress case: the previous
    generation keeps serving calls and the next tick retries.

# Notes

 1. This package is single-threaded by design. The host polls NeedsReload,
    triggers Reload and forwards calls sequentially once per tick, so a call
    in flight can never race a swap.
 2. Symbol signatures are an unchecked contract with the module. Bind each
    entry point once behind a typed adapter (see the game package) and keep
    the exported surface fixed across reloads.
 3. Old staged copies are not deleted. Staging only happens during active
    development, the leak is bounded by the development session.

# Module build

The modbuild tool compiles a module package into the platform shared library
this package loads, holding the advisory build lock the loader honors:

	modbuild build --dir target --name game ./mymodule

For more details see the cli help:

	modbuild -h

# Samples

See runtime for a complete polling host and the package tests.
*/
package hotlib
