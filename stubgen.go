// Package stubgen converts Javadoc HTML class pages into skeletal Java
// source files. It parses the markup generated by the standard doclet
// (what Eclipse produces for "Generate Javadoc"), extracts the class
// signature, fields, constructors and method signatures, and emits a
// .java stub with javadoc comments and default-valued method bodies.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, fs/).
package stubgen
