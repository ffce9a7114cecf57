// Package install implements blue's self-installation: it resolves the
// platform's install directory, copies the running executable into it and
// makes sure the directory is on the user's PATH.
//
// The three stages run in order and stop at the first error:
//
//	Resolve       → Target   (creates the directory)
//	InstallBinary → Binary   (copies the executable, overwriting; no-op when already there)
//	Register      → Registration
//
// Each supported operating system is a [Platform] strategy:
//
//	| OS      | Install directory          | PATH mechanism                       |
//	|---------|----------------------------|--------------------------------------|
//	| Windows | <home>\.blue\bin           | powershell setx PATH "<dir>;$Env:PATH" |
//	| Linux   | <home>/.blue/bin           | export line in ~/.bashrc             |
//	| macOS   | /usr/local/bin/.blue/bin   | export line in ~/.bash_profile       |
//
// The macOS directory is fixed and does not depend on the home directory.
//
// Every collaborator that touches the machine (filesystem, home lookup,
// executable lookup, process execution) is carried by [Env], so tests run
// against afero.NewMemMapFs and a fixed home. Stages never exit the
// process; the caller decides the exit status.
//
// # Windows PATH failures
//
// A failure to run the Windows PATH update is not fatal. The binary is
// already installed at that point and the update can be refused by policy,
// so [Register] logs the failure and reports it in Registration.Warning
// instead of returning an error. Every other failure is returned.
package install
