// Package layout describes where mktarget finds its templates and where it
// puts new projects. A Layout maps the two categories and the two template
// kinds to directory names under the scaffolding root. Defaults match the
// SDK tree (0_Examples, 1_Application, Template, 23_1_Predriver_Operation);
// a project may override them with a mktarget.yaml file at the root, which
// is validated against an embedded JSON schema before it is applied.
package layout
