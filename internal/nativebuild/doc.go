// Package nativebuild drives the CMake build of the native barretenberg
// library and reports the linker directives cgo needs to link against it.
//
// The defaults reproduce the upstream build: profile RelWithAssert,
// TARGET_ARCH=skylake, the clang16 preset, the x86_64-linux toolchain file
// and the bb target. A TOML file can override any of them:
//
//	source_dir  = "../barretenberg/cpp"
//	build_dir   = "build"
//	profile     = "Release"
//
//	[defines]
//	MULTITHREADING = "ON"
package nativebuild
