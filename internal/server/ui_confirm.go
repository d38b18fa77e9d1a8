package server

// uiConfirmJS guards destructive form submissions behind a shared modal. Any
// clickable element with the confirm-delete class triggers it; the target form
// comes from data-form-id or the nearest enclosing form.
const uiConfirmJS = `
function ensureConfirmStyles() {
  if (document.getElementById('__tailoraConfirmStyles')) return;
  const style = document.createElement('style');
  style.id = '__tailoraConfirmStyles';
  style.textContent = [
    '.tailora-modal-overlay{position:fixed;inset:0;background:rgba(43,36,32,.45);display:none;align-items:center;justify-content:center;z-index:2000;padding:12px;}',
    '.tailora-modal{background:#fff;border:1px solid #e4d7c9;border-radius:12px;box-shadow:0 24px 56px rgba(43,36,32,.24);max-width:min(480px,92vw);overflow:hidden;}',
    '.tailora-modal-head{border-bottom:1px solid #e4d7c9;padding:12px 16px;background:#faf6f1;font-size:16px;font-weight:700;}',
    '.tailora-modal-body{padding:14px 16px 6px;color:#2b2420;font-size:14px;line-height:1.4;overflow-wrap:anywhere;word-break:break-word;}',
    '.tailora-modal-actions{padding:10px 16px 14px;display:flex;gap:8px;justify-content:flex-end;flex-wrap:wrap;}',
    '.tailora-modal-actions button{font:inherit;font-size:14px;padding:8px 12px;border-radius:8px;border:1px solid #e4d7c9;cursor:pointer;}',
    '.tailora-modal-actions .secondary{background:#fff;color:#5c4a3c;}',
    '.tailora-modal-actions .danger{background:#b5544d;border-color:#b5544d;color:#fff;}',
  ].join('');
  document.head.appendChild(style);
}

function confirmOverlay() {
  ensureConfirmStyles();
  let overlay = document.getElementById('__tailoraConfirmOverlay');
  if (overlay) return overlay;
  overlay = document.createElement('div');
  overlay.id = '__tailoraConfirmOverlay';
  overlay.className = 'tailora-modal-overlay';
  overlay.setAttribute('aria-hidden', 'true');
  overlay.innerHTML = [
    '<div class="tailora-modal" role="dialog" aria-modal="true" aria-label="Confirm deletion">',
    '  <div class="tailora-modal-head">Delete?</div>',
    '  <div class="tailora-modal-body" id="__tailoraConfirmMessage"></div>',
    '  <div class="tailora-modal-actions">',
    '    <button type="button" id="__tailoraConfirmCancel" class="secondary">Cancel</button>',
    '    <button type="button" id="__tailoraConfirmOk" class="danger">Delete</button>',
    '  </div>',
    '</div>',
  ].join('');
  document.body.appendChild(overlay);
  return overlay;
}

// The one pending confirmation: { form, detach }. Closing always runs detach
// so the four listeners bound for that invocation never accumulate.
let pendingConfirm = null;

function closeConfirm() {
  const overlay = document.getElementById('__tailoraConfirmOverlay');
  if (overlay) {
    overlay.style.display = 'none';
    overlay.setAttribute('aria-hidden', 'true');
  }
  if (pendingConfirm) {
    pendingConfirm.detach();
    pendingConfirm = null;
  }
}

function openConfirm(form, itemName) {
  if (pendingConfirm) closeConfirm();

  const overlay = confirmOverlay();
  const msgEl = document.getElementById('__tailoraConfirmMessage');
  const okBtn = document.getElementById('__tailoraConfirmOk');
  const cancelBtn = document.getElementById('__tailoraConfirmCancel');
  if (!msgEl || !okBtn || !cancelBtn) return;

  const label = String(itemName || '').trim() || 'this item';
  msgEl.textContent = 'Are you sure you want to delete ' + label + '? This cannot be undone.';

  const onOverlayClick = (ev) => {
    if (ev.target !== overlay) return;
    closeConfirm();
  };
  const onKeyDown = (ev) => {
    if (ev.key !== 'Escape') return;
    if (overlay.style.display !== 'flex') return;
    closeConfirm();
  };
  const onCancel = () => closeConfirm();
  const onConfirm = () => {
    const target = pendingConfirm && pendingConfirm.form;
    if (target) target.submit();
    closeConfirm();
  };

  pendingConfirm = {
    form: form,
    detach: () => {
      overlay.removeEventListener('click', onOverlayClick);
      document.removeEventListener('keydown', onKeyDown);
      cancelBtn.removeEventListener('click', onCancel);
      okBtn.removeEventListener('click', onConfirm);
    },
  };

  overlay.addEventListener('click', onOverlayClick);
  document.addEventListener('keydown', onKeyDown);
  cancelBtn.addEventListener('click', onCancel);
  okBtn.addEventListener('click', onConfirm);

  overlay.style.display = 'flex';
  overlay.setAttribute('aria-hidden', 'false');
  setTimeout(() => cancelBtn.focus(), 0);
}

document.addEventListener('click', (ev) => {
  const trigger = ev.target && ev.target.closest && ev.target.closest('.confirm-delete');
  if (!trigger) return;
  ev.preventDefault();

  let form = null;
  const formID = String(trigger.getAttribute('data-form-id') || '').trim();
  if (formID) form = document.getElementById(formID);
  if (!form) form = trigger.closest('form');
  if (!form) return;

  openConfirm(form, trigger.getAttribute('data-item-name'));
});
`
